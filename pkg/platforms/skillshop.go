package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Skillshop (Google's training catalog) lists no instructors and states
// effort as a bare figure, fractional hours ("6.5 hrs") or minutes
// ("45 mins"). Language comes from detection over the brief.
func init() {
	adapter.Register(adapter.Config{
		Platform:       "skillshop",
		Hosts:          []string{"skillshop.exceedlms.com", "skillshop.withgoogle.com"},
		Mode:           browser.ModeDynamic,
		Organization:   "SkillShop",
		DetectLanguage: true,
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//div[@class='course__header']/div/h1",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@class='course__description postcontent']",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//h2[@class='u-headingsection--activity activitysection__name']/text()[1]",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//ul[@class='activityheading__meta activitymeta activitymeta--heading']/li[3]/text()[2]",
						},
						Rule: normalize.DurationAuto,
					},
				},
			},
		},
	})
}
