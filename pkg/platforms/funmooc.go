package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// FUN MOOC (fun-mooc.fr) renders server-side. The organization sits in
// meta tags rather than visible text, and the subheader lists duration and
// languages as labeled "Durée :" / "Langues :" rows.
func init() {
	adapter.Register(adapter.Config{
		Platform: "funmooc",
		Hosts:    []string{"fun-mooc.fr"},
		Mode:     browser.ModeAuto,
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@class='subheader__title']",
					}},
					Organization: adapter.FieldSpec{
						Strategy:  adapter.Attribute,
						Attribute: "content",
						Locators: []string{
							"//a/meta[@property='name']",
						},
					},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//*[@id='site-content']/div[2]/div[1]/div/div[1]/div[1]/div/div/p",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//div[@class='nested-item nested-item--accordion nested-item--0']/ul/li/div",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//div[@class='subheader__content']/div[2]/ul/li[1]/span",
						},
						Rule: normalize.DurationAuto,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//h3[@class='person-glimpse__title']",
					}},
					Languages: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@class='subheader__content']/div[2]/ul/div/li/span",
						},
					},
				},
			},
		},
	})
}
