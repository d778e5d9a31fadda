package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/internal/domain/entity"
)

// View builders shared by the handlers. Entities stay transport-agnostic, so
// the JSON shapes live here.

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"role":       u.Role,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func listingView(l *entity.Listing) gin.H {
	return gin.H{
		"id":          l.ID,
		"owner_id":    l.OwnerID,
		"title":       l.Title,
		"description": l.Description,
		"price":       l.Price,
		"location":    l.Location,
		"country":     l.Country,
		"category":    l.Category,
		"type":        l.Type,
		"size":        l.Size,
		"condition":   l.Condition,
		"tags":        l.Tags,
		"images":      l.Images,
		"created_at":  l.CreatedAt,
		"updated_at":  l.UpdatedAt,
	}
}

func ownerView(o entity.ListingOwner) gin.H {
	return gin.H{
		"id":       o.ID,
		"username": o.Username,
		"points":   o.Points,
	}
}

func directoryView(d application.DirectoryListing) gin.H {
	v := listingView(&d.Listing)
	v["owner"] = ownerView(d.Owner)
	return v
}

func reviewView(r *entity.Review) gin.H {
	return gin.H{
		"id":         r.ID,
		"listing_id": r.ListingID,
		"author_id":  r.AuthorID,
		"comment":    r.Comment,
		"rating":     r.Rating,
		"created_at": r.CreatedAt,
	}
}

func reviewWithAuthorView(r application.ReviewWithAuthor) gin.H {
	v := reviewView(&r.Review)
	v["author_name"] = r.AuthorName
	return v
}

func detailView(d *application.ListingDetail) gin.H {
	v := listingView(&d.Listing)
	v["owner"] = ownerView(d.Owner)
	reviews := make([]gin.H, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		reviews = append(reviews, reviewWithAuthorView(r))
	}
	v["reviews"] = reviews
	v["coordinates"] = d.Coordinates
	return v
}

func swapView(s *entity.Swap) gin.H {
	return gin.H{
		"id":               s.ID,
		"sender_id":        s.SenderID,
		"receiver_id":      s.ReceiverID,
		"sender_item_id":   s.SenderItemID,
		"receiver_item_id": s.ReceiverItemID,
		"status":           s.Status,
		"created_at":       s.CreatedAt,
		"updated_at":       s.UpdatedAt,
	}
}

func swapDetailView(d entity.SwapDetail) gin.H {
	v := swapView(&d.Swap)
	v["sender_name"] = d.SenderName
	v["receiver_name"] = d.ReceiverName
	v["sender_item_title"] = d.SenderItemTitle
	v["receiver_item_title"] = d.ReceiverItemTitle
	return v
}

func swapDetailViews(ds []entity.SwapDetail) []gin.H {
	out := make([]gin.H, 0, len(ds))
	for _, d := range ds {
		out = append(out, swapDetailView(d))
	}
	return out
}

func itemView(i *entity.Item) gin.H {
	return gin.H{
		"id":          i.ID,
		"user_id":     i.UserID,
		"title":       i.Title,
		"description": i.Description,
		"size":        i.Size,
		"condition":   i.Condition,
		"image_url":   i.ImageURL,
		"status":      i.Status,
		"created_at":  i.CreatedAt,
		"updated_at":  i.UpdatedAt,
	}
}
