package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// FutureLearn splits effort across two banner entries, one for length in
// weeks and one for weekly pace; the duration spec combines both before
// the weeks-times-hours conversion.
func init() {
	adapter.Register(adapter.Config{
		Platform:       "futurelearn",
		Hosts:          []string{"futurelearn.com"},
		Mode:           browser.ModeAuto,
		DetectLanguage: true,
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//div[@id='section-page-header']//div/h1",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//section[@id='section-creators']/div//div/h2",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//section[@id='section-overview']/div/div/div",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//section[@id='section-syllabus']//div/ul/li/div[2]/div/div/div/div/div/div/div/h3",
							"//section[@id='section-topics']/div/div[2]/ul/li",
						}},
					},
					Duration: adapter.FieldSpec{
						Combine: true,
						Locators: []string{
							"//div[@id='sticky-banner-start']/ul/li[1]/div[2]/span",
							"//div[@id='sticky-banner-start']/ul/li[3]/div[2]/span",
						},
						Rule: normalize.DurationWeeksByHours,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//section[@id='section-educators']//div/h3/a/span",
					}},
				},
			},
		},
	})
}
