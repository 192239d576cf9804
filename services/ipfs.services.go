package services

import (
	Errors "errors"
	"io"

	"solamate_server/clients"
	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxUploadSize bounds files pinned through the API
const MaxUploadSize = 10 << 20

func pinError(c *fiber.Ctx, op string, err error) error {
	if Errors.Is(err, clients.ErrNoAPIKey) {
		return errors.HandleServiceError(c, op, err.Error(), "IPFS service is not configured")
	}
	return errors.HandleServiceError(c, op, err.Error(), "Failed to upload to IPFS")
}

// UploadFile pins the multipart "file" field
func (h *Handler) UploadFile(c *fiber.Ctx) error {
	const op = "ipfs.upload.svc"

	fh, err := c.FormFile("file")
	if err != nil {
		return errors.HandleBadRequestError(c, "file", "No file provided")
	}
	if fh.Size > MaxUploadSize {
		return errors.HandleBadRequestError(c, "file", "File is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return errors.HandleInternalError(c, op, "multipart: "+err.Error())
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return errors.HandleInternalError(c, op, "multipart: "+err.Error())
	}
	if len(data) > MaxUploadSize {
		return errors.HandleBadRequestError(c, "file", "File is too large")
	}

	res, err := h.IPFS.PinFile(c.UserContext(), fh.Filename, data)
	if err != nil {
		return pinError(c, op, err)
	}

	return c.JSON(schemas.UploadResponse{
		Success:     true,
		IpfsHash:    res.IpfsHash,
		URL:         h.IPFS.URL(res.IpfsHash),
		GatewayURLs: h.IPFS.GatewayURLs(res.IpfsHash),
	})
}

// UploadJSON pins a JSON document
func (h *Handler) UploadJSON(c *fiber.Ctx) error {
	const op = "ipfs.upload-json.svc"

	req := new(schemas.UploadJSONSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	name := req.Metadata.Name
	if name == "" {
		name = uuid.NewString() + ".json"
	}

	res, err := h.IPFS.PinJSON(c.UserContext(), name, req.Data)
	if err != nil {
		return pinError(c, op, err)
	}

	return c.JSON(schemas.UploadJSONResponse{
		Success:  true,
		IpfsHash: res.IpfsHash,
		URL:      h.IPFS.URL(res.IpfsHash),
	})
}
