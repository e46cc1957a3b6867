package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	seedBcryptCost       = 10
)

var (
	seedServices = []models.Service{
		{Title: "Web Development", Description: "Scalable, high-performance web applications built with modern stacks.", Icon: "code"},
		{Title: "Frontend Engineering", Description: "Interactive, smooth, and responsive interfaces using React & GSAP.", Icon: "layout"},
		{Title: "UI/UX Design", Description: "User-centric design systems that convert visitors into customers.", Icon: "pen-tool"},
		{Title: "Branding", Description: "Complete identity systems from logos to brand guidelines.", Icon: "star"},
	}

	seedPortfolio = []models.PortfolioItem{
		{Title: "FinTech Dashboard", Category: "Web App", Image: "https://picsum.photos/800/600?random=1", Description: "Real-time financial data visualization."},
		{Title: "Neon Commerce", Category: "E-Commerce", Image: "https://picsum.photos/800/600?random=2", Description: "High-conversion streetwear store."},
		{Title: "Future Health", Category: "Mobile App", Image: "https://picsum.photos/800/600?random=3", Description: "Telemedicine platform for the future."},
	}

	seedTestimonials = []models.Testimonial{
		{Name: "Sarah Jenkins", Role: "CEO, TechFlow", Content: "Gradevo transformed our digital presence. The 3D integration is seamless."},
		{Name: "Marcus Chen", Role: "Founder, StartUp X", Content: "Pixel-perfect design and incredibly fast delivery. Highly recommended."},
	}

	seedSiteContent = []models.SiteContent{
		{Key: models.SiteKeyHeroTitle, Value: "Gra#Devo — Design. Develop. Deploy."},
		{Key: models.SiteKeyHeroSubtitle, Value: "A full-stack creative agency blending design, engineering, and storytelling to help brands grow digitally."},
		{Key: models.SiteKeyServicesIntro, Value: "We build digital experiences that are fast, beautiful, and ready to scale."},
		{Key: models.SiteKeyContactCTA, Value: "Let’s build something extraordinary."},
	}

	seedDna = []models.DnaItem{
		{
			Title:       "Immersive #Experiences",
			Description: "We transform passive viewing into active participation. Our digital worlds are designed to captivate, engage, and leave a lasting impression.",
			Image:       "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&q=80&w=1000",
		},
		{
			Title:       "Pixel #Perfection",
			Description: "Quality is non-negotiable. We obsess over every micro-interaction, ensuring smooth animations and flawless execution across all devices.",
			Image:       "https://images.unsplash.com/photo-1550745165-9bc0b252726f?auto=format&fit=crop&q=80&w=1000",
		},
		{
			Title:       "Strategic #Growth",
			Description: "Beauty with purpose. We blend aesthetic excellence with data-driven strategy to ensure your digital presence drives real business results.",
			Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=1000",
		},
		{
			Title:       "Future #Ready",
			Description: "We build on modern stacks designed for scale. From Web3 to AI integration, we prepare your brand for the digital landscape of tomorrow.",
			Image:       "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&q=80&w=1000",
		},
	}
)

// Seed inserts the default admin user and the default content. Each collection is
// only seeded while its table is empty, so running Seed again changes nothing.
func Seed(ctx context.Context, db sqlx.ExtContext) error {
	if err := seedAdmin(ctx, db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	collections := []struct {
		table  string
		insert string
		rows   [][]any
	}{
		{"services", `INSERT INTO services (title, description, icon) VALUES ($1, $2, $3)`, serviceRows()},
		{"portfolio", `INSERT INTO portfolio (title, category, image, description) VALUES ($1, $2, $3, $4)`, portfolioRows()},
		{"testimonials", `INSERT INTO testimonials (name, role, content) VALUES ($1, $2, $3)`, testimonialRows()},
		{"site_content", `INSERT INTO site_content (key, value) VALUES ($1, $2)`, siteContentRows()},
		{"dna", `INSERT INTO dna (title, description, image) VALUES ($1, $2, $3)`, dnaRows()},
	}

	for _, c := range collections {
		if err := seedTable(ctx, db, c.table, c.insert, c.rows); err != nil {
			return fmt.Errorf("seed %s: %w", c.table, err)
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, db sqlx.ExtContext) error {
	var id int64
	err := sqlx.GetContext(ctx, db, &id, `SELECT id FROM users WHERE username = $1`, DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), seedBcryptCost)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO users (username, password) VALUES ($1, $2)`, DefaultAdminUsername, string(hash)); err != nil {
		return err
	}

	logger.Log.Infow("default admin user created", "username", DefaultAdminUsername)
	return nil
}

// seedTable is a no-op when table already holds rows.
func seedTable(ctx context.Context, db sqlx.ExtContext, table, insert string, rows [][]any) error {
	var count int64
	if err := sqlx.GetContext(ctx, db, &count, `SELECT COUNT(*) FROM `+table); err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Infow("seed skipped", "table", table, "rows", count)
		return nil
	}

	for _, args := range rows {
		if _, err := db.ExecContext(ctx, insert, args...); err != nil {
			return err
		}
	}

	logger.Log.Infow("seeded", "table", table, "rows", len(rows))
	return nil
}

func serviceRows() [][]any {
	rows := make([][]any, 0, len(seedServices))
	for _, s := range seedServices {
		rows = append(rows, []any{s.Title, s.Description, s.Icon})
	}
	return rows
}

func portfolioRows() [][]any {
	rows := make([][]any, 0, len(seedPortfolio))
	for _, p := range seedPortfolio {
		rows = append(rows, []any{p.Title, p.Category, p.Image, p.Description})
	}
	return rows
}

func testimonialRows() [][]any {
	rows := make([][]any, 0, len(seedTestimonials))
	for _, t := range seedTestimonials {
		rows = append(rows, []any{t.Name, t.Role, t.Content})
	}
	return rows
}

func siteContentRows() [][]any {
	rows := make([][]any, 0, len(seedSiteContent))
	for _, c := range seedSiteContent {
		rows = append(rows, []any{c.Key, c.Value})
	}
	return rows
}

func dnaRows() [][]any {
	rows := make([][]any, 0, len(seedDna))
	for _, d := range seedDna {
		rows = append(rows, []any{d.Title, d.Description, d.Image})
	}
	return rows
}
