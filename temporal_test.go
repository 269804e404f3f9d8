package graphson

import (
	"reflect"
	"testing"
	"time"

	"github.com/tiglabs/graphson/graph"
)

func temporalCases() []struct {
	value interface{}
	wire  string
} {
	return []struct {
		value interface{}
		wire  string
	}{
		{90 * time.Minute, `{"@type":"g:Duration","@value":"PT1H30M"}`},
		{time.Date(2016, 12, 14, 16, 14, 36, 295000000, time.UTC), `{"@type":"g:Instant","@value":"2016-12-14T16:14:36.295Z"}`},
		{graph.LocalDate{Year: 2016, Month: time.January, Day: 1}, `{"@type":"g:LocalDate","@value":"2016-01-01"}`},
		{graph.LocalDate{Year: -44, Month: time.March, Day: 15}, `{"@type":"g:LocalDate","@value":"-0044-03-15"}`},
		{graph.LocalDate{Year: 10000, Month: time.January, Day: 1}, `{"@type":"g:LocalDate","@value":"+10000-01-01"}`},
		{graph.LocalDateTime{
			Date: graph.LocalDate{Year: 2016, Month: time.January, Day: 1},
			Time: graph.LocalTime{Hour: 12, Minute: 30},
		}, `{"@type":"g:LocalDateTime","@value":"2016-01-01T12:30"}`},
		{graph.LocalDateTime{
			Date: graph.LocalDate{Year: -44, Month: time.March, Day: 15},
			Time: graph.LocalTime{Hour: 12, Minute: 30},
		}, `{"@type":"g:LocalDateTime","@value":"-0044-03-15T12:30"}`},
		{graph.LocalTime{Hour: 12, Minute: 30, Second: 45}, `{"@type":"g:LocalTime","@value":"12:30:45"}`},
		{graph.MonthDay{Month: time.January, Day: 1}, `{"@type":"g:MonthDay","@value":"--01-01"}`},
		{graph.OffsetDateTime{
			DateTime: graph.LocalDateTime{
				Date: graph.LocalDate{Year: 2007, Month: time.December, Day: 3},
				Time: graph.LocalTime{Hour: 10, Minute: 15, Second: 30},
			},
			Offset: 3600,
		}, `{"@type":"g:OffsetDateTime","@value":"2007-12-03T10:15:30+01:00"}`},
		{graph.OffsetDateTime{
			DateTime: graph.LocalDateTime{
				Date: graph.LocalDate{Year: -44, Month: time.March, Day: 15},
				Time: graph.LocalTime{Hour: 10, Minute: 15, Second: 30},
			},
			Offset: 3600,
		}, `{"@type":"g:OffsetDateTime","@value":"-0044-03-15T10:15:30+01:00"}`},
		{graph.OffsetTime{
			Time:   graph.LocalTime{Hour: 10, Minute: 15, Second: 30},
			Offset: 3600,
		}, `{"@type":"g:OffsetTime","@value":"10:15:30+01:00"}`},
		{graph.Period{Years: 1, Months: 6, Days: 15}, `{"@type":"g:Period","@value":"P1Y6M15D"}`},
		{graph.Year(2016), `{"@type":"g:Year","@value":"2016"}`},
		{graph.YearMonth{Year: 2016, Month: time.June}, `{"@type":"g:YearMonth","@value":"2016-06"}`},
		{graph.ZonedDateTime{
			DateTime: graph.LocalDateTime{
				Date: graph.LocalDate{Year: 2016, Month: time.December, Day: 23},
				Time: graph.LocalTime{Hour: 12, Minute: 12, Second: 24},
			},
			Offset: 3600,
			Zone:   "Europe/Paris",
		}, `{"@type":"g:ZonedDateTime","@value":"2016-12-23T12:12:24+01:00[Europe/Paris]"}`},
		{graph.ZonedDateTime{
			DateTime: graph.LocalDateTime{
				Date: graph.LocalDate{Year: -44, Month: time.March, Day: 15},
				Time: graph.LocalTime{Hour: 12, Minute: 12, Second: 24},
			},
			Offset: 3600,
			Zone:   "Europe/Paris",
		}, `{"@type":"g:ZonedDateTime","@value":"-0044-03-15T12:12:24+01:00[Europe/Paris]"}`},
		{graph.ZoneOffset(3600), `{"@type":"g:ZoneOffset","@value":"+01:00"}`},
		{graph.ZoneOffset(0), `{"@type":"g:ZoneOffset","@value":"Z"}`},
	}
}

func TestTemporalMarshalV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	for _, test := range temporalCases() {
		actual, err := c.Marshal(test.value)
		if err != nil {
			t.Errorf("marshal %v: %v", test.value, err)
			continue
		}
		if string(actual) != test.wire {
			t.Errorf("marshal %v: expected %s, got %s", test.value, test.wire, actual)
		}
	}
}

func TestTemporalRoundTripV2(t *testing.T) {
	c := mustCodec(t, V2, false)

	for _, test := range temporalCases() {
		back, err := c.Unmarshal([]byte(test.wire))
		if err != nil {
			t.Errorf("unmarshal %s: %v", test.wire, err)
			continue
		}
		if !reflect.DeepEqual(back, test.value) {
			t.Errorf("unmarshal %s: expected %#v, got %#v", test.wire, test.value, back)
		}
	}
}

func TestTemporalMarshalV1(t *testing.T) {
	// the legacy format writes the same ISO strings, just untagged
	c := mustCodec(t, V1, false)

	tests := []struct {
		value    interface{}
		expected string
	}{
		{90 * time.Minute, `"PT1H30M"`},
		{time.Date(2016, 12, 14, 16, 14, 36, 0, time.UTC), `"2016-12-14T16:14:36Z"`},
		{graph.LocalDate{Year: 2016, Month: time.January, Day: 1}, `"2016-01-01"`},
		{graph.Year(2016), `"2016"`},
		{graph.ZoneOffset(3600), `"+01:00"`},
	}

	for _, test := range tests {
		actual, err := c.Marshal(test.value)
		if err != nil {
			t.Errorf("marshal %v: %v", test.value, err)
			continue
		}
		if string(actual) != test.expected {
			t.Errorf("marshal %v: expected %s, got %s", test.value, test.expected, actual)
		}
	}
}

func TestTemporalDecodeMalformed(t *testing.T) {
	c := mustCodec(t, V2, false)

	inputs := []string{
		`{"@type":"g:Duration","@value":"nope"}`,
		`{"@type":"g:Duration","@value":3}`,
		`{"@type":"g:Instant","@value":"2016-12-14"}`,
		`{"@type":"g:LocalDate","@value":"2016-13-40"}`,
		`{"@type":"g:MonthDay","@value":"--02-30"}`,
		`{"@type":"g:ZoneOffset","@value":"+19:00"}`,
		`{"@type":"g:Period","@value":"P"}`,
	}

	for _, input := range inputs {
		_, err := c.Unmarshal([]byte(input))
		if _, ok := err.(*MalformedEnvelopeError); !ok {
			t.Errorf("unmarshal %s: expected malformed envelope error, got %v", input, err)
		}
	}
}
