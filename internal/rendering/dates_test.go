package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		style DateStyle
		want  string
	}{
		{name: "empty long", input: "", style: DateLong, want: ""},
		{name: "empty short", input: "", style: DateShort, want: ""},
		{name: "blank", input: "   ", style: DateLong, want: ""},
		{name: "month input long", input: "2023-03", style: DateLong, want: "March 2023"},
		{name: "month input short", input: "2023-03", style: DateShort, want: "Mar 2023"},
		{name: "full date", input: "2019-09-15", style: DateLong, want: "September 2019"},
		{name: "rfc3339", input: "2021-12-01T00:00:00Z", style: DateShort, want: "Dec 2021"},
		{name: "slash form", input: "07/2020", style: DateLong, want: "July 2020"},
		{name: "already formatted", input: "May 2018", style: DateLong, want: "May 2018"},
		{name: "unparseable passes through", input: "Spring 2020", style: DateShort, want: "Spring 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input, tt.style))
		})
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Present", DateRange("2020-01", "2022-06", true, DateShort))
	assert.Equal(t, "January 2020 - June 2022", DateRange("2020-01", "2022-06", false, DateLong))
	assert.Equal(t, "Present", DateRange("", "", true, DateLong))
	assert.Equal(t, "Jan 2020", DateRange("2020-01", "", false, DateShort))
	assert.Equal(t, "Jun 2022", DateRange("", "2022-06", false, DateShort))
	assert.Equal(t, "", DateRange("", "", false, DateShort))
}
