package graph

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// The temporal kinds travel as ISO-8601 strings. Formatting follows
// the source protocol's conventions: fractional seconds print in
// groups of three digits, zero components are omitted where the
// format allows it.

// FormatInstant renders t as an ISO-8601 instant in UTC.
func FormatInstant(t time.Time) string {
	t = t.UTC()
	s := t.Format("2006-01-02T15:04:05")
	if n := t.Nanosecond(); n != 0 {
		s += fracNanos(n)
	}
	return s + "Z"
}

// ParseInstant reads an ISO-8601 instant. Offsets other than Z are
// accepted and folded into UTC.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid instant %q", s)
	}
	return t.UTC(), nil
}

var durationRE = regexp.MustCompile(`(?i)^([-+]?)P(?:([-+]?\d+)D)?(T(?:([-+]?\d+)H)?(?:([-+]?\d+)M)?(?:([-+]?\d+)(?:[.,](\d{0,9}))?S)?)?$`)

// FormatDuration renders d in the ISO-8601 seconds-based form,
// for example "PT1H30M0.500S".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	seconds := int64(d) / int64(time.Second)
	nanos := int64(d) % int64(time.Second)
	if nanos < 0 {
		nanos += int64(time.Second)
		seconds--
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	buf := make([]byte, 0, 24)
	buf = append(buf, "PT"...)
	if hours != 0 {
		buf = strconv.AppendInt(buf, hours, 10)
		buf = append(buf, 'H')
	}
	if minutes != 0 {
		buf = strconv.AppendInt(buf, minutes, 10)
		buf = append(buf, 'M')
	}
	if secs == 0 && nanos == 0 && len(buf) > 2 {
		return string(buf)
	}
	if secs < 0 && nanos > 0 {
		if secs == -1 {
			buf = append(buf, "-0"...)
		} else {
			buf = strconv.AppendInt(buf, secs+1, 10)
		}
	} else {
		buf = strconv.AppendInt(buf, secs, 10)
	}
	if nanos > 0 {
		pos := len(buf)
		// the leading digit is overwritten by the decimal point,
		// leaving the fraction zero padded to nine places
		if secs < 0 {
			buf = strconv.AppendInt(buf, 2*int64(time.Second)-nanos, 10)
		} else {
			buf = strconv.AppendInt(buf, int64(time.Second)+nanos, 10)
		}
		for buf[len(buf)-1] == '0' {
			buf = buf[:len(buf)-1]
		}
		buf[pos] = '.'
	}
	buf = append(buf, 'S')
	return string(buf)
}

// ParseDuration reads the ISO-8601 seconds-based duration form,
// including day components such as "P2DT3H4M".
func ParseDuration(s string) (time.Duration, error) {
	m := durationRE.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "") || strings.EqualFold(m[3], "T") {
		return 0, errors.Errorf("invalid duration %q", s)
	}
	days, err := parseInt64(m[2])
	if err != nil {
		return 0, errors.Errorf("invalid duration %q", s)
	}
	hours, err := parseInt64(m[4])
	if err != nil {
		return 0, errors.Errorf("invalid duration %q", s)
	}
	minutes, err := parseInt64(m[5])
	if err != nil {
		return 0, errors.Errorf("invalid duration %q", s)
	}
	seconds, err := parseInt64(m[6])
	if err != nil {
		return 0, errors.Errorf("invalid duration %q", s)
	}

	totalSeconds := days*86400 + hours*3600 + minutes*60 + seconds
	const maxSeconds = math.MaxInt64 / int64(time.Second)
	if totalSeconds > maxSeconds || totalSeconds < -maxSeconds {
		return 0, errors.Errorf("duration %q out of range", s)
	}

	var nanos int64
	if m[7] != "" {
		frac := m[7] + strings.Repeat("0", 9-len(m[7]))
		nanos, _ = strconv.ParseInt(frac, 10, 64)
		if strings.HasPrefix(m[6], "-") {
			nanos = -nanos
		}
	}

	d := time.Duration(totalSeconds)*time.Second + time.Duration(nanos)
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

// LocalDate is a calendar date without zone or time of day.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year), d.Month, d.Day)
}

func ParseLocalDate(s string) (LocalDate, error) {
	year, rest, ok := splitYear(s)
	if !ok {
		return LocalDate{}, errors.Errorf("invalid local date %q", s)
	}
	// a proxy year with the same leap shape keeps day-of-month
	// validation inside time.Parse
	proxy := "2001"
	if isLeapYear(year) {
		proxy = "2000"
	}
	t, err := time.Parse("2006-01-02", proxy+rest)
	if err != nil {
		return LocalDate{}, errors.Errorf("invalid local date %q", s)
	}
	_, m, d := t.Date()
	return LocalDate{Year: year, Month: m, Day: d}, nil
}

// LocalTime is a wall-clock time without zone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t LocalTime) String() string {
	if t.Second == 0 && t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	if t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d%s", t.Hour, t.Minute, t.Second, fracNanos(t.Nanosecond))
}

func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range []string{"15:04:05.999999999", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}, nil
		}
	}
	return LocalTime{}, errors.Errorf("invalid local time %q", s)
}

// LocalDateTime is a date and time of day without zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

func (t LocalDateTime) String() string {
	return t.Date.String() + "T" + t.Time.String()
}

func ParseLocalDateTime(s string) (LocalDateTime, error) {
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return LocalDateTime{}, errors.Errorf("invalid local date time %q", s)
	}
	date, err := ParseLocalDate(s[:i])
	if err != nil {
		return LocalDateTime{}, errors.Errorf("invalid local date time %q", s)
	}
	tod, err := ParseLocalTime(s[i+1:])
	if err != nil {
		return LocalDateTime{}, errors.Errorf("invalid local date time %q", s)
	}
	return LocalDateTime{Date: date, Time: tod}, nil
}

// ZoneOffset is a fixed offset from UTC in seconds, limited to ±18 hours.
type ZoneOffset int

func (z ZoneOffset) String() string {
	if z == 0 {
		return "Z"
	}
	total := int(z)
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	h, m, s := total/3600, (total/60)%60, total%60
	if s == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

func ParseZoneOffset(s string) (ZoneOffset, error) {
	if s == "Z" || s == "z" {
		return 0, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, errors.Errorf("invalid zone offset %q", s)
	}
	parts := strings.Split(s[1:], ":")
	if len(parts) > 3 {
		return 0, errors.Errorf("invalid zone offset %q", s)
	}
	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || len(part) != 2 || n < 0 {
			return 0, errors.Errorf("invalid zone offset %q", s)
		}
		if i > 0 && n > 59 {
			return 0, errors.Errorf("invalid zone offset %q", s)
		}
		switch i {
		case 0:
			total += n * 3600
		case 1:
			total += n * 60
		case 2:
			total += n
		}
	}
	if total > 18*3600 {
		return 0, errors.Errorf("zone offset %q out of range", s)
	}
	if s[0] == '-' {
		total = -total
	}
	return ZoneOffset(total), nil
}

// OffsetDateTime is a date and time of day at a fixed UTC offset.
type OffsetDateTime struct {
	DateTime LocalDateTime
	Offset   ZoneOffset
}

func (t OffsetDateTime) String() string {
	return t.DateTime.String() + t.Offset.String()
}

func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	i := offsetIndex(s)
	if i < 0 {
		return OffsetDateTime{}, errors.Errorf("invalid offset date time %q", s)
	}
	dt, err := ParseLocalDateTime(s[:i])
	if err != nil {
		return OffsetDateTime{}, errors.Errorf("invalid offset date time %q", s)
	}
	off, err := ParseZoneOffset(s[i:])
	if err != nil {
		return OffsetDateTime{}, errors.Errorf("invalid offset date time %q", s)
	}
	return OffsetDateTime{DateTime: dt, Offset: off}, nil
}

// OffsetTime is a wall-clock time at a fixed UTC offset.
type OffsetTime struct {
	Time   LocalTime
	Offset ZoneOffset
}

func (t OffsetTime) String() string {
	return t.Time.String() + t.Offset.String()
}

func ParseOffsetTime(s string) (OffsetTime, error) {
	i := strings.IndexAny(s, "Zz+-")
	if i < 0 {
		return OffsetTime{}, errors.Errorf("invalid offset time %q", s)
	}
	tod, err := ParseLocalTime(s[:i])
	if err != nil {
		return OffsetTime{}, errors.Errorf("invalid offset time %q", s)
	}
	off, err := ParseZoneOffset(s[i:])
	if err != nil {
		return OffsetTime{}, errors.Errorf("invalid offset time %q", s)
	}
	return OffsetTime{Time: tod, Offset: off}, nil
}

// ZonedDateTime is a date and time of day in a named zone. The zone id
// is carried verbatim so a round trip never depends on local tzdata.
type ZonedDateTime struct {
	DateTime LocalDateTime
	Offset   ZoneOffset
	Zone     string
}

func (t ZonedDateTime) String() string {
	s := t.DateTime.String() + t.Offset.String()
	if t.Zone != "" {
		s += "[" + t.Zone + "]"
	}
	return s
}

func ParseZonedDateTime(s string) (ZonedDateTime, error) {
	zone := ""
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") || i+1 >= len(s)-1 {
			return ZonedDateTime{}, errors.Errorf("invalid zoned date time %q", s)
		}
		zone = s[i+1 : len(s)-1]
		s = s[:i]
	}
	odt, err := ParseOffsetDateTime(s)
	if err != nil {
		return ZonedDateTime{}, errors.Errorf("invalid zoned date time %q", s)
	}
	return ZonedDateTime{DateTime: odt.DateTime, Offset: odt.Offset, Zone: zone}, nil
}

// Year is a calendar year on its own.
type Year int

func (y Year) String() string {
	return strconv.Itoa(int(y))
}

func ParseYear(s string) (Year, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid year %q", s)
	}
	return Year(n), nil
}

// YearMonth is a year and month without a day.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%s-%02d", formatYear(m.Year), m.Month)
}

func ParseYearMonth(s string) (YearMonth, error) {
	i := strings.LastIndexByte(s, '-')
	if i <= 0 {
		return YearMonth{}, errors.Errorf("invalid year month %q", s)
	}
	year, err := strconv.Atoi(s[:i])
	if err != nil {
		return YearMonth{}, errors.Errorf("invalid year month %q", s)
	}
	month, err := strconv.Atoi(s[i+1:])
	if err != nil || month < 1 || month > 12 {
		return YearMonth{}, errors.Errorf("invalid year month %q", s)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// MonthDay is a month and day without a year, written "--MM-DD".
type MonthDay struct {
	Month time.Month
	Day   int
}

var monthDayMax = [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (m MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", m.Month, m.Day)
}

func ParseMonthDay(s string) (MonthDay, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "--") || s[4] != '-' {
		return MonthDay{}, errors.Errorf("invalid month day %q", s)
	}
	month, err := strconv.Atoi(s[2:4])
	if err != nil || month < 1 || month > 12 {
		return MonthDay{}, errors.Errorf("invalid month day %q", s)
	}
	day, err := strconv.Atoi(s[5:])
	if err != nil || day < 1 || day > monthDayMax[month-1] {
		return MonthDay{}, errors.Errorf("invalid month day %q", s)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

// Period is a calendar-based amount of years, months and days.
type Period struct {
	Years  int
	Months int
	Days   int
}

var periodRE = regexp.MustCompile(`(?i)^([-+]?)P(?:([-+]?\d+)Y)?(?:([-+]?\d+)M)?(?:([-+]?\d+)W)?(?:([-+]?\d+)D)?$`)

func (p Period) String() string {
	if p.Years == 0 && p.Months == 0 && p.Days == 0 {
		return "P0D"
	}
	var buf strings.Builder
	buf.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&buf, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&buf, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&buf, "%dD", p.Days)
	}
	return buf.String()
}

func ParsePeriod(s string) (Period, error) {
	m := periodRE.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "") {
		return Period{}, errors.Errorf("invalid period %q", s)
	}
	nums := make([]int, 4)
	for i, g := range m[2:] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return Period{}, errors.Errorf("invalid period %q", s)
		}
		nums[i] = n
	}
	p := Period{Years: nums[0], Months: nums[1], Days: nums[2]*7 + nums[3]}
	if m[1] == "-" {
		p.Years, p.Months, p.Days = -p.Years, -p.Months, -p.Days
	}
	return p, nil
}

func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// offsetIndex locates the zone offset suffix. The search starts after
// the date separator so date dashes and negative years are skipped.
func offsetIndex(s string) int {
	t := strings.IndexByte(s, 'T')
	if t < 0 {
		return -1
	}
	i := strings.IndexAny(s[t:], "Zz+-")
	if i < 0 {
		return -1
	}
	return t + i
}

// fracNanos prints a fractional second in three-digit groups with
// trailing zero groups dropped.
func fracNanos(nanos int) string {
	switch {
	case nanos%1000000 == 0:
		return fmt.Sprintf(".%03d", nanos/1000000)
	case nanos%1000 == 0:
		return fmt.Sprintf(".%06d", nanos/1000)
	default:
		return fmt.Sprintf(".%09d", nanos)
	}
}

func formatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	if year > 9999 {
		return fmt.Sprintf("+%d", year)
	}
	return fmt.Sprintf("%04d", year)
}

// splitYear peels the signed year off the front of a date string,
// leaving the "-MM-DD" remainder. Negative years carry a minus sign
// and years past four digits a plus sign, matching formatYear.
func splitYear(s string) (int, string, bool) {
	rest := s
	sign := 1
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
	}
	if len(rest) < 10 {
		return 0, "", false
	}
	digits := rest[:len(rest)-6]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, "", false
		}
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, "", false
	}
	return sign * year, rest[len(rest)-6:], true
}

// isLeapYear follows the proleptic Gregorian rule. Divisibility is
// sign invariant, so negative years need no special case.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
