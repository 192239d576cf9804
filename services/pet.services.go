package services

import (
	Errors "errors"

	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/pet"
	"solamate_server/schemas"

	"github.com/gofiber/fiber/v2"
)

func petError(c *fiber.Ctx, op string, err error) error {
	var cd pet.CooldownError
	if Errors.As(err, &cd) {
		return errors.HandleTooManyRequestsError(c, cd.Error())
	}
	if Errors.Is(err, pet.ErrUnknownTask) {
		return errors.HandleBadRequestError(c, "taskId", "Unknown task")
	}
	return errors.HandleInternalError(c, op, "Redis: "+err.Error())
}

func petActionResponse(c *fiber.Ctx, res *pet.XPResult) error {
	return c.JSON(schemas.PetActionResponse{
		Success:   true,
		Pet:       helpers.PetToSchema(res.State),
		XPGained:  res.Gained,
		LeveledUp: res.LeveledUp,
	})
}

// GetPet returns the pet of ?walletAddress= with decay applied
func (h *Handler) GetPet(c *fiber.Ctx) error {
	const op = "pet.get.svc"
	wallet := c.Locals("wallet").(string)

	s, err := h.Pets.UpdatePetStatus(c.UserContext(), wallet)
	if err != nil {
		return petError(c, op, err)
	}

	return c.JSON(schemas.PetResponse{
		Success: true,
		Pet:     helpers.PetToSchema(s),
	})
}

// AdoptPet replaces the wallet's pet with a new one of the chosen type
func (h *Handler) AdoptPet(c *fiber.Ctx) error {
	const op = "pet.adopt.svc"

	req := new(schemas.AdoptPetSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	s, err := h.Pets.Adopt(c.UserContext(), req.WalletAddress, req.Name, req.Type)
	if err != nil {
		return petError(c, op, err)
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.PetResponse{
		Success: true,
		Pet:     helpers.PetToSchema(s),
	})
}

func (h *Handler) RenamePet(c *fiber.Ctx) error {
	const op = "pet.rename.svc"

	req := new(schemas.RenamePetSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	s, err := h.Pets.Rename(c.UserContext(), req.WalletAddress, req.Name)
	if err != nil {
		return petError(c, op, err)
	}

	return c.JSON(schemas.PetResponse{
		Success: true,
		Pet:     helpers.PetToSchema(s),
	})
}

// FeedPet feeds the pet. Feeding inside the cooldown answers 429.
func (h *Handler) FeedPet(c *fiber.Ctx) error {
	const op = "pet.feed.svc"

	req := new(schemas.PetActionSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	res, err := h.Pets.FeedPet(c.UserContext(), req.WalletAddress)
	if err != nil {
		return petError(c, op, err)
	}

	return petActionResponse(c, res)
}

// PlayPet plays with the pet. Playing inside the cooldown answers 429.
func (h *Handler) PlayPet(c *fiber.Ctx) error {
	const op = "pet.play.svc"

	req := new(schemas.PetActionSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	res, err := h.Pets.PlayWithPet(c.UserContext(), req.WalletAddress)
	if err != nil {
		return petError(c, op, err)
	}

	return petActionResponse(c, res)
}

func (h *Handler) AddPetXP(c *fiber.Ctx) error {
	const op = "pet.xp.svc"

	req := new(schemas.AddXPSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	res, err := h.Pets.AddXP(c.UserContext(), req.WalletAddress, req.Amount)
	if err != nil {
		return petError(c, op, err)
	}

	return petActionResponse(c, res)
}

// GetTasks returns today's daily tasks of ?walletAddress=
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	const op = "pet.tasks.svc"
	wallet := c.Locals("wallet").(string)

	tasks, err := h.Pets.Tasks(c.UserContext(), wallet)
	if err != nil {
		return petError(c, op, err)
	}

	return c.JSON(schemas.TasksResponse{
		Success: true,
		Date:    pet.DateKey(h.Now()),
		Tasks:   tasks,
	})
}

// TaskProgress advances a daily task. Completing it grants the task's XP.
func (h *Handler) TaskProgress(c *fiber.Ctx) error {
	const op = "pet.task-progress.svc"

	req := new(schemas.TaskProgressSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	n := req.Amount
	if n == 0 {
		n = 1
	}

	res, err := h.Pets.IncrementTask(c.UserContext(), req.WalletAddress, req.TaskID, n)
	if err != nil {
		return petError(c, op, err)
	}

	resp := schemas.TaskProgressResponse{
		Success:       true,
		Task:          res.Task,
		JustCompleted: res.JustCompleted,
	}
	if res.Reward != nil {
		resp.XPGained = res.Reward.Gained
		resp.LeveledUp = res.Reward.LeveledUp
	}
	return c.JSON(resp)
}
