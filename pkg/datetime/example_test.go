package datetime_test

import (
	"fmt"

	"github.com/dmitrymomot/datekit/pkg/datetime"
)

func ExampleDateTime_Format() {
	d := datetime.New(2024, 3, 5, 14, 7)
	fmt.Println(d.Format("dddd, MMMM d yyyy h:mm tt", nil))
	// Output: Tuesday, March 5 2024 2:07 PM
}

func ExampleParseDateTime() {
	d, err := datetime.ParseDateTime("3/15/24 2pm", nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)
	// Output: 2024-03-15 14:00:00.000
}

func ExampleDateTime_Humanize() {
	ref := datetime.New(2024, 6, 15, 12, 0)

	h, _ := ref.AddHours(-4).Humanize(nil, nil, datetime.WithReference(ref))
	fmt.Println(h)

	h, _ = ref.AddDays(-1).Humanize(nil, nil, datetime.WithReference(ref))
	fmt.Println(h)
	// Output:
	// 4h ago
	// yesterday, 12:00 PM
}

func ExampleShortenedRangeText() {
	from := datetime.New(2024, 3, 4, 9, 0)
	to := datetime.New(2024, 3, 4, 11, 30)

	text, _ := datetime.ShortenedRangeText(from, to, datetime.ModeDateTime, nil, nil,
		datetime.WithRangeReference(datetime.New(2024, 1, 1)))
	fmt.Println(text)
	// Output: from 3/4 9:00 AM to 11:30 AM
}
