package routes

import (
	"net/http"

	"pharmadesk/auth"
	"pharmadesk/calendar"
	"pharmadesk/crm"
	"pharmadesk/dashboard"
	"pharmadesk/expense"
	"pharmadesk/filedrop"
	"pharmadesk/live"
	"pharmadesk/middleware"
	"pharmadesk/movies"
	"pharmadesk/notes"
	"pharmadesk/pos"
	"pharmadesk/ratelim"
	"pharmadesk/stock"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/v1/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/v1/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/v1/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddMovieRoutes(router *httprouter.Router) {
	router.POST("/api/v1/movies/gate", ratelim.RateLimit(middleware.Authenticate(movies.CheckGate)))
	router.POST("/api/v1/movies/gate/close", middleware.Authenticate(movies.CloseGate))
	router.POST("/api/v1/movies/gate/password", middleware.Authenticate(movies.ChangePassword))

	router.GET("/api/v1/movies", middleware.Authenticate(movies.Gated(movies.GetMovies)))
	router.GET("/api/v1/movies/:movieid", middleware.Authenticate(movies.Gated(movies.GetMovie)))
	router.POST("/api/v1/movies", middleware.Authenticate(movies.Gated(movies.CreateMovie)))
	router.PUT("/api/v1/movies/:movieid", middleware.Authenticate(movies.Gated(movies.EditMovie)))
	router.DELETE("/api/v1/movies/:movieid", middleware.Authenticate(movies.Gated(movies.DeleteMovie)))
}

func AddStockRoutes(router *httprouter.Router) {
	router.GET("/api/v1/stock/products", middleware.Authenticate(stock.GetProducts))
	router.GET("/api/v1/stock/products/:productid", middleware.Authenticate(stock.GetProduct))
	router.POST("/api/v1/stock/products", middleware.Authenticate(stock.CreateProduct))
	router.PUT("/api/v1/stock/products/:productid", middleware.Authenticate(stock.EditProduct))
	router.DELETE("/api/v1/stock/products/:productid", middleware.Authenticate(stock.DeleteProduct))

	router.GET("/api/v1/stock/low", middleware.Authenticate(stock.GetLowStock))
	router.GET("/api/v1/stock/expiring", middleware.Authenticate(stock.GetExpiring))

	router.GET("/api/v1/stock/manufacturers", middleware.Authenticate(stock.GetManufacturers))
	router.POST("/api/v1/stock/manufacturers", middleware.Authenticate(stock.CreateManufacturer))
}

func AddPOSRoutes(router *httprouter.Router, hub *live.Hub) {
	router.POST("/api/v1/pos/checkout", ratelim.RateLimit(middleware.Authenticate(pos.Checkout(hub))))
	router.GET("/api/v1/pos/sales", middleware.Authenticate(pos.GetSales))
}

func AddCRMRoutes(router *httprouter.Router) {
	router.GET("/api/v1/crm/customers", middleware.Authenticate(crm.GetCustomers))
	router.POST("/api/v1/crm/customers", middleware.Authenticate(crm.CreateCustomer))
	router.PUT("/api/v1/crm/customers/:customerid", middleware.Authenticate(crm.EditCustomer))
	router.DELETE("/api/v1/crm/customers/:customerid", middleware.Authenticate(crm.DeleteCustomer))
	router.GET("/api/v1/crm/customers/:customerid/details", middleware.Authenticate(crm.GetCustomerDetails))

	router.GET("/api/v1/crm/analytics", middleware.Authenticate(crm.GetAnalytics))

	router.GET("/api/v1/crm/credits", middleware.Authenticate(crm.GetCreditSales))
	router.POST("/api/v1/crm/credits/:creditid/pay", middleware.Authenticate(crm.MarkCreditPaid))

	router.POST("/api/v1/crm/sms", ratelim.RateLimit(middleware.Authenticate(crm.SendBulkSMS)))
	router.GET("/api/v1/crm/sms/logs", middleware.Authenticate(crm.GetSMSLogs))
}

func AddExpenseRoutes(router *httprouter.Router) {
	router.GET("/api/v1/expenses", middleware.Authenticate(expense.GetExpenses))
	router.POST("/api/v1/expenses", middleware.Authenticate(expense.CreateExpense))
	router.PUT("/api/v1/expenses/:expenseid", middleware.Authenticate(expense.EditExpense))
	router.DELETE("/api/v1/expenses/:expenseid", middleware.Authenticate(expense.DeleteExpense))
	router.GET("/api/v1/expenses/summary", middleware.Authenticate(expense.GetSummary))

	router.GET("/api/v1/expense-categories", middleware.Authenticate(expense.GetCategories))
	router.POST("/api/v1/expense-categories", middleware.Authenticate(expense.CreateCategory))
	router.PUT("/api/v1/expense-categories/:categoryid", middleware.Authenticate(expense.EditCategory))
	router.DELETE("/api/v1/expense-categories/:categoryid", middleware.Authenticate(expense.DeleteCategory))
}

func AddCalendarRoutes(router *httprouter.Router) {
	router.GET("/api/v1/calendar/events", middleware.Authenticate(calendar.GetEvents))
	router.POST("/api/v1/calendar/events", middleware.Authenticate(calendar.CreateEvent))
	router.PUT("/api/v1/calendar/events/:eventid", middleware.Authenticate(calendar.EditEvent))
	router.DELETE("/api/v1/calendar/events/:eventid", middleware.Authenticate(calendar.DeleteEvent))

	router.GET("/api/v1/calendar/reminders", middleware.Authenticate(calendar.GetReminders))
	router.POST("/api/v1/calendar/reminders", middleware.Authenticate(calendar.CreateReminder))
	router.DELETE("/api/v1/calendar/reminders/:reminderid", middleware.Authenticate(calendar.DeleteReminder))

	router.GET("/api/v1/calendar/month", middleware.Authenticate(calendar.GetMonth))
	router.GET("/api/v1/calendar/day/:date", middleware.Authenticate(calendar.GetDay))
}

func AddNotesRoutes(router *httprouter.Router) {
	router.GET("/api/v1/notes", middleware.Authenticate(notes.GetNotes))
	router.GET("/api/v1/notes/:noteid", middleware.Authenticate(notes.GetNote))
	router.POST("/api/v1/notes", middleware.Authenticate(notes.CreateNote))
	router.PUT("/api/v1/notes/:noteid", middleware.Authenticate(notes.EditNote))
	router.POST("/api/v1/notes/:noteid/pin", middleware.Authenticate(notes.TogglePin))
	router.DELETE("/api/v1/notes/:noteid", middleware.Authenticate(notes.DeleteNote))

	router.GET("/api/v1/notes-categories", middleware.Authenticate(notes.GetCategories))
	router.POST("/api/v1/notes-categories", middleware.Authenticate(notes.CreateCategory))
	router.DELETE("/api/v1/notes-categories/:categoryid", middleware.Authenticate(notes.DeleteCategory))
}

func AddDashboardRoutes(router *httprouter.Router) {
	router.GET("/api/v1/dashboard", middleware.Authenticate(dashboard.GetOverview))
	router.GET("/api/v1/dashboard/daily/:date", middleware.Authenticate(dashboard.GetDailyStats))
	router.GET("/api/v1/dashboard/monthly", middleware.Authenticate(dashboard.GetMonthlyStats))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/updates", hub.Serve)
}

func AddFileDropRoutes(router *httprouter.Router) {
	router.POST("/api/v1/filedrop/:entitytype", ratelim.RateLimit(middleware.Authenticate(filedrop.UploadImage)))
}
