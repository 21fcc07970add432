package models

import "errors"

// Required-field checks, run by the store accessor before any write.

func (m Movie) Validate() error {
	switch {
	case m.Name == "":
		return errors.New("movie name is required")
	case m.Year == 0:
		return errors.New("movie year is required")
	case m.Language == "":
		return errors.New("movie language is required")
	case m.Duration == 0:
		return errors.New("movie duration is required")
	case m.M3U8URL == "":
		return errors.New("movie video url is required")
	case m.CoverURL == "":
		return errors.New("movie cover url is required")
	case m.UploadedBy == "":
		return errors.New("uploaded_by is required")
	}
	return nil
}

func (c Customer) Validate() error {
	if c.Name == "" {
		return errors.New("customer name is required")
	}
	if c.Mobile == "" {
		return errors.New("customer mobile is required")
	}
	return nil
}

func (p Product) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("product name is required")
	case p.Manufacturer == "":
		return errors.New("product manufacturer is required")
	case p.MRP <= 0:
		return errors.New("product mrp must be positive")
	case p.Stock < 0:
		return errors.New("product stock cannot be negative")
	}
	return nil
}

func (e Expense) Validate() error {
	switch {
	case e.Date == "":
		return errors.New("expense date is required")
	case e.CategoryID == "":
		return errors.New("expense category is required")
	case e.Amount <= 0:
		return errors.New("expense amount must be positive")
	}
	return nil
}

func (e CalendarEvent) Validate() error {
	if e.Title == "" {
		return errors.New("event title is required")
	}
	if e.Date == "" {
		return errors.New("event date is required")
	}
	return nil
}

func (n Note) Validate() error {
	if n.Title == "" {
		return errors.New("note title is required")
	}
	if n.Content == "" {
		return errors.New("note content is required")
	}
	return nil
}
