package handlers

import (
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/server/http/dto"
)

func toSettingsResponse(v *model.PricingView) dto.SettingsResponse {
	return dto.SettingsResponse{
		StoreName:     v.StoreName,
		Currency:      v.Currency,
		PricePerPhoto: v.PricePerPhoto,
		ReceiptFooter: v.ReceiptFooter,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toPhotoResponse(p model.Photo) dto.PhotoResponse {
	return dto.PhotoResponse{
		PhotoID:   p.ID,
		SessionID: p.SessionID,
		FileKey:   p.StorageKey,
		FileName:  p.OriginalName,
		MimeType:  p.MimeType,
		SizeBytes: p.SizeBytes,
		URLPath:   p.RetrievalPath(),
		CreatedAt: p.CreatedAt,
	}
}

func toPhotoResponses(photos []model.Photo) []dto.PhotoResponse {
	out := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	return out
}

func toOrderResponse(o *model.OrderDetails) dto.OrderResponse {
	return dto.OrderResponse{
		OrderNumber:   o.Number,
		SessionID:     o.SessionID,
		PhotoCount:    o.PhotoCount(),
		Currency:      o.Pricing.Currency,
		PricePerPhoto: o.Pricing.PricePerPhoto,
		TotalAmount:   o.TotalAmount,
		StoreName:     o.Pricing.StoreName,
		ReceiptFooter: o.Pricing.ReceiptFooter,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		PrintedAt:     o.PrintedAt,
		Photos:        toPhotoResponses(o.Photos),
	}
}
