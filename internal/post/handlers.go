package post

import (
	"errors"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/platform"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		filter := ListFilter{IncludePosted: c.QueryBool("all")}
		if tag := c.Query("platform"); tag != "" {
			p, ok := platform.Normalize(tag)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "unknown platform "+tag)
			}
			filter.Platform = p
		}
		posts, err := svc.List(c.Context(), filter)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if posts == nil {
			posts = []Post{}
		}
		return c.JSON(posts)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Platform          string `json:"platform"`
			Caption           string `json:"caption"`
			ScheduledDatetime string `json:"scheduled_datetime"`
			LinkOrAssetNote   string `json:"link_or_asset_note"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Platform == "" || body.Caption == "" || body.ScheduledDatetime == "" {
			return fiber.NewError(fiber.StatusBadRequest, "platform, caption and scheduled_datetime required")
		}
		scheduledAt, err := ParseScheduledAt(body.ScheduledDatetime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		created, err := svc.Create(c.Context(), Post{
			Platform:        platform.Platform(body.Platform),
			Caption:         body.Caption,
			ScheduledAt:     scheduledAt,
			LinkOrAssetNote: body.LinkOrAssetNote,
		})
		if errors.Is(err, ErrInvalid) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Platform          *string `json:"platform"`
			Caption           *string `json:"caption"`
			ScheduledDatetime *string `json:"scheduled_datetime"`
			LinkOrAssetNote   *string `json:"link_or_asset_note"`
			IsPosted          *bool   `json:"is_posted"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		patch := Patch{
			Platform:        body.Platform,
			Caption:         body.Caption,
			LinkOrAssetNote: body.LinkOrAssetNote,
			IsPosted:        body.IsPosted,
		}
		if body.ScheduledDatetime != nil {
			scheduledAt, err := ParseScheduledAt(*body.ScheduledDatetime)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			patch.ScheduledAt = &scheduledAt
		}

		updated, err := svc.Update(c.Context(), c.Params("id"), patch)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		if errors.Is(err, ErrInvalid) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(updated)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		err := svc.Delete(c.Context(), c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
