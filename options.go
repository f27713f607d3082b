package ulpforms

import "strconv"

// Option is one entry of a selection field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var monthOptions = []Option{
	{Value: "1", Label: "January"},
	{Value: "2", Label: "February"},
	{Value: "3", Label: "March"},
	{Value: "4", Label: "April"},
	{Value: "5", Label: "May"},
	{Value: "6", Label: "June"},
	{Value: "7", Label: "July"},
	{Value: "8", Label: "August"},
	{Value: "9", Label: "September"},
	{Value: "10", Label: "October"},
	{Value: "11", Label: "November"},
	{Value: "12", Label: "December"},
}

var genderOptions = []Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "other-prefer-not-to-say", Label: "Other/Prefer not to say"},
}

var stateOptions = []Option{
	{Value: "AL", Label: "Alabama"}, {Value: "AK", Label: "Alaska"},
	{Value: "AZ", Label: "Arizona"}, {Value: "AR", Label: "Arkansas"},
	{Value: "CA", Label: "California"}, {Value: "CO", Label: "Colorado"},
	{Value: "CT", Label: "Connecticut"}, {Value: "DE", Label: "Delaware"},
	{Value: "DC", Label: "District of Columbia"}, {Value: "FL", Label: "Florida"},
	{Value: "GA", Label: "Georgia"}, {Value: "HI", Label: "Hawaii"},
	{Value: "ID", Label: "Idaho"}, {Value: "IL", Label: "Illinois"},
	{Value: "IN", Label: "Indiana"}, {Value: "IA", Label: "Iowa"},
	{Value: "KS", Label: "Kansas"}, {Value: "KY", Label: "Kentucky"},
	{Value: "LA", Label: "Louisiana"}, {Value: "ME", Label: "Maine"},
	{Value: "MD", Label: "Maryland"}, {Value: "MA", Label: "Massachusetts"},
	{Value: "MI", Label: "Michigan"}, {Value: "MN", Label: "Minnesota"},
	{Value: "MS", Label: "Mississippi"}, {Value: "MO", Label: "Missouri"},
	{Value: "MT", Label: "Montana"}, {Value: "NE", Label: "Nebraska"},
	{Value: "NV", Label: "Nevada"}, {Value: "NH", Label: "New Hampshire"},
	{Value: "NJ", Label: "New Jersey"}, {Value: "NM", Label: "New Mexico"},
	{Value: "NY", Label: "New York"}, {Value: "NC", Label: "North Carolina"},
	{Value: "ND", Label: "North Dakota"}, {Value: "OH", Label: "Ohio"},
	{Value: "OK", Label: "Oklahoma"}, {Value: "OR", Label: "Oregon"},
	{Value: "PA", Label: "Pennsylvania"}, {Value: "RI", Label: "Rhode Island"},
	{Value: "SC", Label: "South Carolina"}, {Value: "SD", Label: "South Dakota"},
	{Value: "TN", Label: "Tennessee"}, {Value: "TX", Label: "Texas"},
	{Value: "UT", Label: "Utah"}, {Value: "VT", Label: "Vermont"},
	{Value: "VA", Label: "Virginia"}, {Value: "WA", Label: "Washington"},
	{Value: "WV", Label: "West Virginia"}, {Value: "WI", Label: "Wisconsin"},
	{Value: "WY", Label: "Wyoming"},
}

// MonthOptions returns the month selection set.
func MonthOptions() []Option {
	return append([]Option(nil), monthOptions...)
}

// DayOptions returns the day selection set bounded by maxDays, typically the
// result of DaysInMonth for the currently selected month and year.
func DayOptions(maxDays int) []Option {
	if maxDays < 1 || maxDays > 31 {
		maxDays = 31
	}
	out := make([]Option, 0, maxDays)
	for d := 1; d <= maxDays; d++ {
		v := strconv.Itoa(d)
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

// GenderOptions returns the gender selection set.
func GenderOptions() []Option {
	return append([]Option(nil), genderOptions...)
}

// StateOptions returns the state selection set.
func StateOptions() []Option {
	return append([]Option(nil), stateOptions...)
}

func genderValues() []any {
	return optionValues(genderOptions)
}

func stateValues() []any {
	return optionValues(stateOptions)
}

func optionValues(opts []Option) []any {
	out := make([]any, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}
