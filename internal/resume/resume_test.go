package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect int
	}{
		{name: "plain years", text: "Backend engineer with 4 years of Go", expect: 4},
		{name: "plus years", text: "7+ yrs building platforms", expect: 7},
		{name: "largest wins", text: "2 years at Acme, 6 years overall", expect: 6},
		{name: "since year", text: "Writing software since 2016", expect: 10},
		{name: "from year", text: "Employed from 2023 onwards, 1 year remote", expect: 3},
		{name: "future year ignored", text: "since 2030", expect: 0},
		{name: "capped", text: "99 years of wisdom", expect: 50},
		{name: "nothing", text: "Enthusiastic engineer", expect: 0},
		{name: "empty", text: "", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, extractExperience(tt.text, 2026))
		})
	}
}

func TestEstimateExperience(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, EstimateExperience("3 years of QA"))
	assert.Equal(t, 5, EstimateExperience("Senior data engineer"))
	assert.Equal(t, 1, EstimateExperience("Junior developer"))
	assert.Equal(t, 2, EstimateExperience("Developer"))
	assert.Equal(t, 0, EstimateExperience("  "))
}

func TestParseYears(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, ParseYears("5+ years"))
	assert.Equal(t, 12, ParseYears("about 12"))
	assert.Equal(t, 0, ParseYears("a few"))
	assert.Equal(t, 0, ParseYears(""))
}

func TestExtractEducation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		expect string
	}{
		{text: "PhD in Physics, BSc in Math", expect: PhD},
		{text: "Master's degree in CS", expect: Master},
		{text: "MBA, 2015", expect: Master},
		{text: "B.Tech in Electronics", expect: Bachelor},
		{text: "Bachelor of Arts", expect: Bachelor},
		{text: "Associate degree", expect: Diploma},
		{text: "Finished high school in 2010", expect: HighSchool},
		{text: "Self-taught programmer", expect: NotMentioned},
		{text: "", expect: NotMentioned},
		// "m.s" must not match "mrs".
		{text: "Reference: Mrs Smith", expect: NotMentioned},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, ExtractEducation(tt.text), tt.text)
	}
}

func TestExtractContact(t *testing.T) {
	t.Parallel()

	c := ExtractContact("Jane Doe | jane.doe@example.com | 555-123-4567 | LinkedIn.com/in/jane-doe")
	assert.Equal(t, Contact{
		Email:    "jane.doe@example.com",
		Phone:    "555-123-4567",
		LinkedIn: "LinkedIn.com/in/jane-doe",
	}, c)
	assert.Equal(t, 3, c.Count())

	assert.Equal(t, 1, ExtractContact("call 555.123.4567").Count())
	assert.Zero(t, ExtractContact("no contact").Count())
}
