package helpers

import (
	"solamate_server/chain"
	"solamate_server/clients"
	"solamate_server/pet"
	"solamate_server/schemas"
	"solamate_server/storage"
)

// ProfileToSchema strips the avatar payload from a stored profile
func ProfileToSchema(p *storage.Profile) schemas.ProfileSchema {
	return schemas.ProfileSchema{
		WalletAddress: p.WalletAddress,
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		HasAvatar:     p.HasAvatar || p.Avatar != "",
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProfilesToSchema maps a list of stored profiles
func ProfilesToSchema(ps []storage.Profile) []schemas.ProfileSchema {
	out := make([]schemas.ProfileSchema, len(ps))
	for i := range ps {
		out[i] = ProfileToSchema(&ps[i])
	}
	return out
}

// NotificationToSchema maps a stored notification
func NotificationToSchema(n *storage.Notification) schemas.NotificationSchema {
	return schemas.NotificationSchema{
		ID:            n.ID,
		WalletAddress: n.WalletAddress,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		Data:          n.Data,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

// PetToSchema maps a pet state with its trait
func PetToSchema(s *pet.State) schemas.PetSchema {
	trait := pet.TraitOf(s.Type)
	return schemas.PetSchema{
		Name:             s.Name,
		Type:             s.Type,
		Personality:      trait.Personality,
		XPBonus:          trait.XPBonus,
		Level:            s.Level,
		XP:               s.XP,
		TotalXP:          s.TotalXP,
		NextLevelXP:      s.NextLevelXP(),
		Happiness:        s.Happiness,
		Energy:           s.Energy,
		LastFed:          s.LastFed,
		LastPlayed:       s.LastPlayed,
		InteractionCount: s.InteractionCount,
	}
}

// MessagesToSchema maps on-chain messages and parses their content
func MessagesToSchema(ms []chain.MessageRecord) []schemas.RoomMessageSchema {
	out := make([]schemas.RoomMessageSchema, len(ms))
	for i, m := range ms {
		out[i] = schemas.RoomMessageSchema{
			Address:   m.Address.String(),
			Sender:    m.Sender.String(),
			Content:   m.Content,
			Timestamp: m.Timestamp,
			Parsed:    chain.ParseMessageContent(m.Content),
		}
	}
	return out
}

// ExpenseStatsToSchema maps the on-chain aggregate
func ExpenseStatsToSchema(s *chain.ExpenseStats) *schemas.ExpenseStatsSchema {
	return &schemas.ExpenseStatsSchema{
		TotalSent:        s.TotalSent,
		TotalReceived:    s.TotalReceived,
		TotalSentSOL:     LamportsToSOL(s.TotalSent),
		TotalReceivedSOL: LamportsToSOL(s.TotalReceived),
		TransactionCount: s.TransactionCount,
		LastUpdated:      s.LastUpdated,
	}
}

// ReceiptToSchema maps the OCR result
func ReceiptToSchema(r *clients.Receipt) schemas.ReceiptSchema {
	items := make([]schemas.ReceiptItemSchema, len(r.Items))
	for i, it := range r.Items {
		items[i] = schemas.ReceiptItemSchema{Name: it.Name, Quantity: it.Quantity, Price: it.Price}
	}
	return schemas.ReceiptSchema{
		Merchant: r.Merchant,
		Total:    r.Total,
		Currency: r.Currency,
		Date:     r.Date,
		Items:    items,
	}
}
