package graphson

import (
	"time"

	"github.com/tiglabs/graphson/graph"
)

// Temporal codecs. Every temporal kind travels as its ISO-8601 string
// form; the graph package owns the exact formats.

func encodeDuration(r *Registry, v interface{}) (interface{}, error) {
	return graph.FormatDuration(v.(time.Duration)), nil
}

func decodeDuration(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindDuration, "not a string")
	}
	d, err := graph.ParseDuration(s)
	if err != nil {
		return nil, malformedValue(r, KindDuration, err.Error())
	}
	return d, nil
}

func encodeInstant(r *Registry, v interface{}) (interface{}, error) {
	return graph.FormatInstant(v.(time.Time)), nil
}

func decodeInstant(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindInstant, "not a string")
	}
	t, err := graph.ParseInstant(s)
	if err != nil {
		return nil, malformedValue(r, KindInstant, err.Error())
	}
	return t, nil
}

func encodeLocalDate(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.LocalDate).String(), nil
}

func decodeLocalDate(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindLocalDate, "not a string")
	}
	d, err := graph.ParseLocalDate(s)
	if err != nil {
		return nil, malformedValue(r, KindLocalDate, err.Error())
	}
	return d, nil
}

func encodeLocalDateTime(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.LocalDateTime).String(), nil
}

func decodeLocalDateTime(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindLocalDateTime, "not a string")
	}
	d, err := graph.ParseLocalDateTime(s)
	if err != nil {
		return nil, malformedValue(r, KindLocalDateTime, err.Error())
	}
	return d, nil
}

func encodeLocalTime(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.LocalTime).String(), nil
}

func decodeLocalTime(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindLocalTime, "not a string")
	}
	t, err := graph.ParseLocalTime(s)
	if err != nil {
		return nil, malformedValue(r, KindLocalTime, err.Error())
	}
	return t, nil
}

func encodeMonthDay(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.MonthDay).String(), nil
}

func decodeMonthDay(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindMonthDay, "not a string")
	}
	m, err := graph.ParseMonthDay(s)
	if err != nil {
		return nil, malformedValue(r, KindMonthDay, err.Error())
	}
	return m, nil
}

func encodeOffsetDateTime(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.OffsetDateTime).String(), nil
}

func decodeOffsetDateTime(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindOffsetDateTime, "not a string")
	}
	t, err := graph.ParseOffsetDateTime(s)
	if err != nil {
		return nil, malformedValue(r, KindOffsetDateTime, err.Error())
	}
	return t, nil
}

func encodeOffsetTime(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.OffsetTime).String(), nil
}

func decodeOffsetTime(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindOffsetTime, "not a string")
	}
	t, err := graph.ParseOffsetTime(s)
	if err != nil {
		return nil, malformedValue(r, KindOffsetTime, err.Error())
	}
	return t, nil
}

func encodePeriod(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.Period).String(), nil
}

func decodePeriod(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindPeriod, "not a string")
	}
	p, err := graph.ParsePeriod(s)
	if err != nil {
		return nil, malformedValue(r, KindPeriod, err.Error())
	}
	return p, nil
}

func encodeYear(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.Year).String(), nil
}

func decodeYear(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindYear, "not a string")
	}
	y, err := graph.ParseYear(s)
	if err != nil {
		return nil, malformedValue(r, KindYear, err.Error())
	}
	return y, nil
}

func encodeYearMonth(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.YearMonth).String(), nil
}

func decodeYearMonth(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindYearMonth, "not a string")
	}
	m, err := graph.ParseYearMonth(s)
	if err != nil {
		return nil, malformedValue(r, KindYearMonth, err.Error())
	}
	return m, nil
}

func encodeZonedDateTime(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.ZonedDateTime).String(), nil
}

func decodeZonedDateTime(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindZonedDateTime, "not a string")
	}
	t, err := graph.ParseZonedDateTime(s)
	if err != nil {
		return nil, malformedValue(r, KindZonedDateTime, err.Error())
	}
	return t, nil
}

func encodeZoneOffset(r *Registry, v interface{}) (interface{}, error) {
	return v.(graph.ZoneOffset).String(), nil
}

func decodeZoneOffset(r *Registry, raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, malformedValue(r, KindZoneOffset, "not a string")
	}
	z, err := graph.ParseZoneOffset(s)
	if err != nil {
		return nil, malformedValue(r, KindZoneOffset, err.Error())
	}
	return z, nil
}
