// Package hours описывает дневные интервалы времени вида HH:MM-HH:MM,
// которыми задаются рабочие часы курьеров и часы доставки заказов.
package hours

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFormat   = errors.New("interval must match HH:MM-HH:MM")
	ErrEndBeforeStart  = errors.New("interval end is before its start")
	ErrInvalidInterval = errors.New("invalid hours list")
)

var intervalPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])-([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Interval промежуток времени внутри суток, границы хранятся как смещение от полуночи.
type Interval struct {
	start time.Duration
	end   time.Duration
}

func ParseInterval(raw string) (Interval, error) {
	match := intervalPattern.FindStringSubmatch(raw)
	if match == nil {
		return Interval{}, ErrInvalidFormat
	}

	start := clock(match[1], match[2])
	end := clock(match[3], match[4])
	if end < start {
		return Interval{}, ErrEndBeforeStart
	}

	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Duration {
	return i.start
}

func (i Interval) End() time.Duration {
	return i.end
}

// Overlaps сравнивает по открытым границам: 09:00-10:00 и 10:00-11:00 не пересекаются.
// Пересечение есть, если граница одного интервала лежит строго внутри другого,
// поэтому совпадающие интервалы не пересекаются.
func (i Interval) Overlaps(other Interval) bool {
	return i.reaches(other) || other.reaches(i)
}

func (i Interval) reaches(other Interval) bool {
	return (other.start < i.end && i.end < other.end) ||
		(i.start < other.start && other.start < i.end)
}

func (i Interval) String() string {
	return formatClock(i.start) + "-" + formatClock(i.end)
}

type List []Interval

func (l List) Strings() []string {
	result := make([]string, len(l))
	for i, interval := range l {
		result[i] = interval.String()
	}
	return result
}

type FormatError struct {
	Raw string
	Err error
}

// ValidationError содержит сразу все найденные проблемы списка интервалов.
type ValidationError struct {
	Format  []FormatError
	Overlap []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInterval, strings.Join(e.Violations(), "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInterval
}

func (e *ValidationError) Violations() []string {
	violations := make([]string, 0, len(e.Format)+len(e.Overlap))
	for _, f := range e.Format {
		violations = append(violations, fmt.Sprintf("%q: %v", f.Raw, f.Err))
	}
	violations = append(violations, e.Overlap...)
	return violations
}

// Parse проверяет весь список целиком и возвращает интервалы, отсортированные по началу.
// Пересечения ищутся только если все строки корректны.
func Parse(raw []string) (List, error) {
	validationErr := &ValidationError{}

	intervals := make(List, 0, len(raw))
	for _, r := range raw {
		interval, err := ParseInterval(r)
		if err != nil {
			validationErr.Format = append(validationErr.Format, FormatError{Raw: r, Err: err})
			continue
		}
		intervals = append(intervals, interval)
	}

	if len(validationErr.Format) > 0 {
		return nil, validationErr
	}

	sort.SliceStable(intervals, func(a, b int) bool {
		return intervals[a].start < intervals[b].start
	})

	// сравниваем с интервалом, который дальше всех уходит вправо, а не с соседом:
	// иначе вложенный или вырожденный интервал скроет пересечение.
	// Каждый интервал внутри самого широкого дает отдельное сообщение.
	widest := 0
	for i := 1; i < len(intervals); i++ {
		if intervals[widest].Overlaps(intervals[i]) {
			validationErr.Overlap = append(validationErr.Overlap,
				fmt.Sprintf("%s intersects with %s", intervals[widest], intervals[i]),
			)
		}
		if intervals[i].end > intervals[widest].end {
			widest = i
		}
	}

	if len(validationErr.Overlap) > 0 {
		return nil, validationErr
	}

	return intervals, nil
}

func clock(hh, mm string) time.Duration {
	// формат уже проверен регуляркой
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

func formatClock(d time.Duration) string {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%02d:%02d", h, m)
}
