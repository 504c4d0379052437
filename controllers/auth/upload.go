package controllers

import (
	"lingadmin/config"
	"lingadmin/middleware"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type UploadController struct {
	uploads *resources.UploadService
}

func NewUploadController(reg *resources.Registry) *UploadController {
	return &UploadController{uploads: reg.Uploads}
}

// Upload streams the incoming file through to the platform's file store and
// returns the hosted URL. The caller then embeds the URL in the owning
// entity's thumbnail/image/audio field and saves the entity as a second call;
// if that save fails the uploaded file is orphaned.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A file is required!", nil)
	}
	if fileHeader.Size > config.AppConfig.UploadMaxBytes {
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File is too large!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read the uploaded file!", nil)
	}
	defer file.Close()

	url, err := ctl.uploads.Upload(middleware.RequestContext(c), fileHeader.Filename, file)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{
		"url": url,
	})
}
