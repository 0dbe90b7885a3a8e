package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Unow is a French-only catalog. Duration lives in the offer details list
// as a labeled row ("Durée 14h").
func init() {
	adapter.Register(adapter.Config{
		Platform:     "unow",
		Hosts:        []string{"unow.fr"},
		Mode:         browser.ModeAuto,
		Organization: "Unow",
		Languages:    []normalize.Language{normalize.French},
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//div[@class='main-block__content course-hero__content']//h1",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@class='unow-block__content course-grid pb-0']/div/p",
							"//div[@class='main-block__content course-hero__content']//p[1]",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//h4[@class='course-program-detail__title']",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//ul[@class='course-offers__details']/li[contains(., 'Durée')]",
						},
						Rule: normalize.DurationClock,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//h3[@class='unow-heading-4 mt-0']",
					}},
				},
			},
		},
	})
}
