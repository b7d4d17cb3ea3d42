package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"premrishi/fitterm/internal/contact"
	"premrishi/fitterm/internal/utils"
)

const brandName = "Prem Rishi Fitness"

type serviceCard struct {
	Service     contact.Service
	Title       string
	Description string
}

var serviceCards = []serviceCard{
	{
		Service:     contact.ServiceWeightLoss,
		Title:       "Weight Loss",
		Description: "Science-backed fat loss programs combining cardio, strength training, and metabolic conditioning to help you shed unwanted weight and keep it off for good.",
	},
	{
		Service:     contact.ServiceStrengthTraining,
		Title:       "Strength Training",
		Description: "Build lean muscle mass and increase your strength with progressive overload programs tailored to your fitness level and goals.",
	},
	{
		Service:     contact.ServiceNutritionCoaching,
		Title:       "Nutrition Coaching",
		Description: "Personalized meal plans and nutritional guidance in collaboration with top nutrition doctors to fuel your transformation.",
	},
	{
		Service:     contact.ServiceFlexibilityRehab,
		Title:       "Flexibility & Rehabilitation",
		Description: "Mobility work, stretching routines, and rehabilitation exercises to improve flexibility, prevent injuries, and recover faster.",
	},
}

type stat struct {
	Value string
	Label string
}

var aboutStats = []stat{
	{Value: "5+", Label: "Years Experience"},
	{Value: "200+", Label: "Clients Transformed"},
	{Value: "NASM", Label: "Certified Trainer"},
}

func sectionWidth(width int) int {
	if width > 100 {
		return 96
	}
	if width < 20 {
		return 20
	}
	return width - 4
}

func eyebrowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Primary)).
		Bold(true)
}

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Bold(true)
}

func bodyStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext)).
		Width(width)
}

func ctaStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Background(lipgloss.Color(utils.Colours.Primary)).
		Bold(true).
		Padding(0, 2)
}

func sectionStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(2, 2)
}

func renderHero(width int) string {
	inner := sectionWidth(width)

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Primary)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.PrimaryDim)).
		Padding(0, 1).
		Render("NASM Certified Personal Trainer")

	headline := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle().Render("TRANSFORM YOUR"),
		eyebrowStyle().Render("BODY & MIND"),
		headingStyle().Render("WITH PREM RISHI"),
	)

	sub := bodyStyle(inner).Render("5+ years of experience helping clients achieve their fitness goals. " +
		"Personalized training programs for weight loss, strength training, flexibility, and nutrition coaching.")

	ctas := lipgloss.JoinHorizontal(lipgloss.Top,
		ctaStyle().Render(utils.FormatKeyHint("c", "Book a Free Consultation")),
		"  ",
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Text)).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(utils.Colours.Border)).
			Render(utils.FormatKeyHint("2", "View Services")),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, badge, "", headline, "", sub, "", ctas)
	return sectionStyle(width).Padding(3, 2).Render(content)
}

func renderServices(width int) string {
	inner := sectionWidth(width)

	var b strings.Builder
	b.WriteString(eyebrowStyle().Render("WHAT I OFFER"))
	b.WriteString("\n")
	b.WriteString(headingStyle().Render("MY SERVICES"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle(inner).Render("Comprehensive fitness solutions designed to help you reach your goals, " +
		"whatever they may be."))
	b.WriteString("\n\n")

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Surface1)).
		Padding(0, 1).
		Width(inner - 2)

	for i, card := range serviceCards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			headingStyle().Render(card.Title),
			bodyStyle(inner-6).Render(card.Description),
		)
		b.WriteString(cardStyle.Render(body))
		if i < len(serviceCards)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(ctaStyle().Render(utils.FormatKeyHint("c", "Start Your Journey")))

	return sectionStyle(width).Render(b.String())
}

func renderAbout(width int) string {
	inner := sectionWidth(width)

	var b strings.Builder
	b.WriteString(eyebrowStyle().Render("ABOUT ME"))
	b.WriteString("\n")
	b.WriteString(headingStyle().Render("MEET PREM RISHI"))
	b.WriteString("\n\n")

	paragraphs := []string{
		"As a NASM-certified personal trainer with over 5 years of experience in the fitness industry, " +
			"I've dedicated my career to helping individuals transform their bodies and minds.",
		"My journey as a former bodybuilder has given me first-hand knowledge of what it takes to achieve " +
			"real, lasting results. I understand the challenges, the plateaus, and the mindset needed to push through barriers.",
		"Working alongside top nutrition doctors, I provide a holistic approach to fitness that combines " +
			"effective training programs with science-backed nutritional guidance.",
	}
	for _, p := range paragraphs {
		b.WriteString(bodyStyle(inner).Render(p))
		b.WriteString("\n\n")
	}

	statStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Surface1)).
		Padding(0, 1).
		Align(lipgloss.Center)

	stats := make([]string, 0, len(aboutStats))
	for _, s := range aboutStats {
		stats = append(stats, statStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			eyebrowStyle().Render(s.Value),
			bodyStyle(lipgloss.Width(s.Label)).Render(s.Label),
		)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	b.WriteString("\n\n")

	tags := []string{"NASM Certified", "Nutrition Partner Network", "Former Bodybuilder"}
	tagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Background(lipgloss.Color(utils.Colours.Surface)).
		Padding(0, 1).
		MarginRight(1)
	for _, tag := range tags {
		b.WriteString(tagStyle.Render(tag))
	}
	b.WriteString("\n\n")
	b.WriteString(ctaStyle().Render(utils.FormatKeyHint("c", "Book a Free Consultation")))

	return sectionStyle(width).Render(b.String())
}

func renderContactIntro(width int) string {
	inner := sectionWidth(width)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Muted))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))

	rows := []struct{ label, value string }{
		{"Email", "contact@premrishi.fitness"},
		{"Phone", "Available upon request"},
		{"Instagram", "@premrishi.fitness"},
	}

	var b strings.Builder
	b.WriteString(eyebrowStyle().Render("GET IN TOUCH"))
	b.WriteString("\n")
	b.WriteString(headingStyle().Render("START YOUR ") + eyebrowStyle().Render("TRANSFORMATION"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle(inner).Render("Ready to take the first step towards a healthier, stronger you? " +
		"Fill out the form and I'll get back to you within 24 hours to discuss your fitness goals " +
		"and create a personalized plan just for you."))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(utils.PadString(row.label, 11, ' ')))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return b.String()
}

func renderFooter(width int, now time.Time) string {
	logo := renderLogo()
	links := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext)).
		Render("instagram.com/rishii._.12  •  rishimr12@gmail.com")
	copyright := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Muted)).
		Render(utils.FormatCopyright(brandName, now))

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(utils.Colours.Surface1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, logo, links, copyright))
}

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text)).Bold(true).Render("PREM") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Primary)).Bold(true).Render("RISHI")
}
