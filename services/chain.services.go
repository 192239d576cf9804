package services

import (
	Errors "errors"

	"solamate_server/chain"
	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/schemas"

	"github.com/gagliardetto/solana-go"
	"github.com/gofiber/fiber/v2"
)

const rateLimitedDescription = "Too many requests to the Solana network. Please wait a moment."

func chainError(c *fiber.Ctx, op string, err error, description string) error {
	if Errors.Is(err, chain.ErrRateLimited) {
		return errors.HandleTooManyRequestsError(c, rateLimitedDescription)
	}
	return errors.HandleServiceError(c, op, err.Error(), description)
}

// GetFriends returns the cached friend list of a wallet. ?refresh=true
// bypasses the cache.
func (h *Handler) GetFriends(c *fiber.Ctx) error {
	const op = "friends.get.svc"

	req := new(schemas.FriendsQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	list, err := h.Friends.Load(c.UserContext(), helpers.ParseWallet(req.WalletAddress), req.Refresh)
	if err != nil {
		return chainError(c, op, err, "Failed to load friends")
	}

	return c.JSON(schemas.FriendsResponse{
		Success:   true,
		Friends:   list.Accepted,
		Pending:   list.Pending,
		Incoming:  list.Incoming(),
		Outgoing:  list.Outgoing(),
		FetchedAt: list.FetchedAt,
		Stale:     list.Stale,
	})
}

// GetChatMessages returns the decoded messages of ?chatRoom=, or of the room
// between ?a= and ?b=
func (h *Handler) GetChatMessages(c *fiber.Ctx) error {
	const op = "chat-messages.get.svc"

	req := new(schemas.ChatMessagesQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	var room solana.PublicKey
	if req.ChatRoom != "" {
		room = helpers.ParseWallet(req.ChatRoom)
	} else {
		var err error
		room, err = h.Deriver.ChatRoomPDA(helpers.ParseWallet(req.A), helpers.ParseWallet(req.B))
		if err != nil {
			return errors.HandleInternalError(c, op, "pda: "+err.Error())
		}
	}

	records, err := h.Chain.FetchMessages(c.UserContext(), room)
	if err != nil {
		return chainError(c, op, err, "Failed to load messages")
	}

	return c.JSON(schemas.ChatMessagesResponse{
		Success:  true,
		ChatRoom: room.String(),
		Messages: helpers.MessagesToSchema(records),
	})
}

// DerivePDA derives a program address from the query seeds
func (h *Handler) DerivePDA(c *fiber.Ctx) error {
	const op = "pda.get.svc"

	req := new(schemas.PDAQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	a := helpers.ParseWallet(req.A)

	var (
		addr solana.PublicKey
		err  error
	)
	switch req.Kind {
	case "profile":
		addr, err = h.Deriver.ProfilePDA(a)
	case "expense_stats":
		addr, err = h.Deriver.ExpenseStatsPDA(a)
	case "friendship", "chat_room":
		if req.B == "" {
			return errors.HandleBadRequestError(c, "b", "b is required")
		}
		b := helpers.ParseWallet(req.B)
		if req.Kind == "friendship" {
			addr, err = h.Deriver.FriendshipPDA(a, b)
		} else {
			addr, err = h.Deriver.ChatRoomPDA(a, b)
		}
	case "message":
		addr, err = h.Deriver.MessagePDA(a, req.Timestamp)
	case "funding_event":
		addr, err = h.Deriver.FundingEventPDA(a, req.Timestamp)
	case "group_split":
		addr, err = h.Deriver.GroupSplitPDA(a, req.Timestamp)
	}
	if err != nil {
		return errors.HandleInternalError(c, op, "pda: "+err.Error())
	}

	return c.JSON(schemas.PDAResponse{
		Success:   true,
		Kind:      req.Kind,
		Address:   addr.String(),
		ProgramID: h.Deriver.ProgramID().String(),
	})
}

// GetExpenseStats returns the on-chain spending aggregate of a wallet
func (h *Handler) GetExpenseStats(c *fiber.Ctx) error {
	const op = "expenses.stats.svc"
	wallet := c.Locals("wallet").(string)

	stats, err := h.Chain.FetchExpenseStats(c.UserContext(), helpers.ParseWallet(wallet))
	if err != nil {
		if Errors.Is(err, chain.ErrAccountNotFound) {
			return c.JSON(schemas.ExpenseStatsResponse{
				Success: true,
				Exists:  false,
			})
		}
		return chainError(c, op, err, "Failed to load expense stats")
	}

	return c.JSON(schemas.ExpenseStatsResponse{
		Success: true,
		Exists:  true,
		Stats:   helpers.ExpenseStatsToSchema(stats),
	})
}

// ClassifyTransfer turns a wallet or RPC failure into a user-facing message
func (h *Handler) ClassifyTransfer(c *fiber.Ctx) error {

	req := new(schemas.TransferErrorSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	kind := helpers.ClassifyTransferError(req.Error)
	return c.JSON(schemas.TransferErrorResponse{
		Success: true,
		Kind:    kind,
		Message: helpers.TransferErrorMessage(kind),
	})
}
