package filedrop

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pharmadesk/mq"
	"pharmadesk/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

// EntityType names the record an upload belongs to.
type EntityType string

const (
	EntityProduct EntityType = "product"
	EntityMovie   EntityType = "movie"

	uploadRoot = "static/uploads"
	thumbWidth = 300
	maxUpload  = 10 << 20 // 10 MiB
)

var allowedMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func parseEntity(raw string) (EntityType, error) {
	switch EntityType(strings.ToLower(raw)) {
	case EntityProduct:
		return EntityProduct, nil
	case EntityMovie:
		return EntityMovie, nil
	default:
		return "", fmt.Errorf("unsupported entity type %q", raw)
	}
}

func uploadDir(entity EntityType) string {
	return filepath.Join(uploadRoot, string(entity))
}

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// saveImageWithThumb stores the decoded image as JPEG alongside a
// resized thumbnail and returns the public paths.
func saveImageWithThumb(file *multipart.FileHeader, entity EntityType) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("cannot open image: %w", err)
	}
	defer src.Close()

	if mimeType := file.Header.Get("Content-Type"); !allowedMIMEs[mimeType] {
		return "", "", fmt.Errorf("unsupported image type %q", mimeType)
	}

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GenerateID(16)
	dir := uploadDir(entity)
	thumbDir := filepath.Join(dir, "thumb")
	if err := ensureDirExists(dir); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	originalPath := filepath.Join(dir, uniqueID+".jpg")
	thumbnailPath := filepath.Join(thumbDir, uniqueID+".jpg")

	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save original image: %w", err)
	}
	thumbImg := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/" + originalPath, "/" + thumbnailPath, nil
}

// UploadImage accepts a multipart "image" field and stores it under the
// entity's upload directory. POST /api/v1/filedrop/:entitytype
func UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity, err := parseEntity(ps.ByName("entitytype"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "could not parse upload: "+err.Error())
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "no image uploaded")
		return
	}

	imagePath, thumbPath, err := saveImageWithThumb(files[0], entity)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "could not upload image: "+err.Error())
		return
	}

	mq.Emit("image-uploaded", mq.Event{EntityID: string(entity), Detail: imagePath})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"imageUrl": imagePath,
		"thumbUrl": thumbPath,
	})
}
