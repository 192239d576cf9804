package services

import (
	Errors "errors"

	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/schemas"
	"solamate_server/storage"

	"github.com/gofiber/fiber/v2"
)

const defaultSearchLimit = 10

// GetProfile returns the profile of ?walletAddress= without its avatar payload
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	const op = "profile.get.svc"
	wallet := c.Locals("wallet").(string)

	p, err := h.Profiles.Get(c.UserContext(), wallet)
	if err != nil {
		if Errors.Is(err, storage.ErrNotFound) {
			return c.JSON(schemas.GetProfileResponse{
				Success: true,
				Exists:  false,
			})
		}
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	profile := helpers.ProfileToSchema(p)
	return c.JSON(schemas.GetProfileResponse{
		Success: true,
		Exists:  true,
		Profile: &profile,
	})
}

// SaveProfile upserts a profile and stores an inline avatar image
func (h *Handler) SaveProfile(c *fiber.Ctx) error {
	const op = "profile.save.svc"

	req := new(schemas.SaveProfileSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	var (
		avatar      []byte
		contentType string
	)
	p := &storage.Profile{
		WalletAddress: req.WalletAddress,
		Username:      req.Username,
		DisplayName:   req.DisplayName,
	}
	if helpers.IsDataURL(req.Avatar) {
		var err error
		avatar, contentType, err = helpers.ParseDataURL(req.Avatar)
		if err != nil {
			if Errors.Is(err, helpers.ErrAvatarTooLarge) {
				return errors.HandleBadRequestError(c, "avatar", "Avatar image is too large")
			}
			return errors.HandleBadRequestError(c, "avatar", "Invalid avatar image")
		}
	} else {
		p.Avatar = req.Avatar
	}

	if avatar != nil {
		if err := h.Avatars.Put(c.UserContext(), req.WalletAddress, contentType, avatar); err != nil {
			return errors.HandleInternalError(c, op, "MinIO: "+err.Error())
		}
		p.HasAvatar = true
	}

	saved, err := h.Profiles.Save(c.UserContext(), p)
	if err != nil {
		if Errors.Is(err, storage.ErrUsernameTaken) {
			return errors.HandleConflictError(c, storage.ErrUsernameTaken.Error())
		}
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.SaveProfileResponse{
		Success: true,
		Profile: helpers.ProfileToSchema(saved),
	})
}

// GetAvatar serves the uploaded avatar bytes, or the plain avatar file name
func (h *Handler) GetAvatar(c *fiber.Ctx) error {
	const op = "avatar.get.svc"
	wallet := c.Locals("wallet").(string)

	p, err := h.Profiles.Get(c.UserContext(), wallet)
	if err != nil {
		if Errors.Is(err, storage.ErrNotFound) {
			return errors.HandleNotFoundError(c, "Profile not found")
		}
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	if !p.HasAvatar {
		if p.Avatar != "" {
			return c.JSON(schemas.AvatarResponse{
				Success: true,
				Avatar:  p.Avatar,
			})
		}
		return errors.HandleNotFoundError(c, "Avatar not found")
	}

	data, contentType, err := h.Avatars.Get(c.UserContext(), wallet)
	if err != nil {
		if Errors.Is(err, storage.ErrNotFound) {
			return errors.HandleNotFoundError(c, "Avatar not found")
		}
		return errors.HandleInternalError(c, op, "MinIO: "+err.Error())
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(data)
}

// GetUsers lists every profile
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	const op = "users.get.svc"

	profiles, err := h.Profiles.List(c.UserContext())
	if err != nil {
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.UsersResponse{
		Success: true,
		Users:   helpers.ProfilesToSchema(profiles),
	})
}

// SearchUsers matches ?query= against usernames and display names
func (h *Handler) SearchUsers(c *fiber.Ctx) error {
	const op = "users.search.svc"

	req := new(schemas.SearchUsersQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	profiles, err := h.Profiles.Search(c.UserContext(), req.Query, req.Exclude, req.Limit)
	if err != nil {
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.UsersResponse{
		Success: true,
		Users:   helpers.ProfilesToSchema(profiles),
	})
}
