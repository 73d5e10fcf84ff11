package web

import (
	"errors"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/analytics"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/platform"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/post"

	"github.com/gofiber/fiber/v2"
)

type postView struct {
	ID              string
	PlatformName    string
	Color           string
	Caption         string
	ScheduledAt     string
	LinkOrAssetNote string
}

type platformOption struct {
	Tag      string
	Name     string
	Selected bool
}

type schedulerForm struct {
	Platform        string
	Caption         string
	ScheduledAt     string
	LinkOrAssetNote string
}

type analyticsCard struct {
	Tag string
	analytics.Snapshot
}

func RegisterRoutes(app *fiber.App, posts *post.Service, stats *analytics.Service, authMiddleware fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/scheduler")
	})

	app.Get("/scheduler", func(c *fiber.Ctx) error {
		return renderScheduler(c, posts, fiber.StatusOK, schedulerForm{}, "")
	})

	app.Post("/scheduler", authMiddleware, func(c *fiber.Ctx) error {
		form := schedulerForm{
			Platform:        c.FormValue("platform"),
			Caption:         c.FormValue("caption"),
			ScheduledAt:     c.FormValue("scheduled_datetime"),
			LinkOrAssetNote: c.FormValue("link_or_asset_note"),
		}

		if form.Platform == "" || form.Caption == "" || form.ScheduledAt == "" {
			return renderScheduler(c, posts, fiber.StatusBadRequest, form, "Platform, caption and scheduled time are required.")
		}
		scheduledAt, err := post.ParseScheduledAt(form.ScheduledAt)
		if err != nil {
			return renderScheduler(c, posts, fiber.StatusBadRequest, form, err.Error())
		}

		_, err = posts.Create(c.Context(), post.Post{
			Platform:        platform.Platform(form.Platform),
			Caption:         form.Caption,
			ScheduledAt:     scheduledAt,
			LinkOrAssetNote: form.LinkOrAssetNote,
		})
		if errors.Is(err, post.ErrInvalid) {
			return renderScheduler(c, posts, fiber.StatusBadRequest, form, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Redirect("/scheduler", fiber.StatusSeeOther)
	})

	app.Get("/analytics", func(c *fiber.Ctx) error {
		snapshots, err := stats.Dashboard(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		cards := make([]analyticsCard, 0, len(snapshots))
		for _, p := range platform.All() {
			cards = append(cards, analyticsCard{Tag: string(p), Snapshot: snapshots[p]})
		}
		return c.Render("views/analytics", fiber.Map{
			"Title": "Analytics",
			"Cards": cards,
		})
	})
}

func renderScheduler(c *fiber.Ctx, posts *post.Service, status int, form schedulerForm, errMsg string) error {
	list, err := posts.List(c.Context(), post.ListFilter{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	views := make([]postView, 0, len(list))
	for _, p := range list {
		views = append(views, postView{
			ID:              p.ID,
			PlatformName:    p.Platform.Name(),
			Color:           p.Platform.Color(),
			Caption:         p.Caption,
			ScheduledAt:     p.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"),
			LinkOrAssetNote: p.LinkOrAssetNote,
		})
	}

	options := make([]platformOption, 0, 6)
	for _, p := range platform.All() {
		options = append(options, platformOption{
			Tag:      string(p),
			Name:     p.Name(),
			Selected: string(p) == form.Platform,
		})
	}

	return c.Status(status).Render("views/scheduler", fiber.Map{
		"Title":     "Scheduler",
		"Posts":     views,
		"Platforms": options,
		"Form":      form,
		"Error":     errMsg,
	})
}
