package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Skufu/RxAdvisor/internal/knowledge"
)

var ErrInvalidAge = errors.New("age must be an integer")

// CategorizeAge buckets an age: under 18 is pediatric, 65 and over is elderly.
func CategorizeAge(age int) knowledge.AgeCategory {
	switch {
	case age < 18:
		return knowledge.AgePediatric
	case age >= 65:
		return knowledge.AgeElderly
	default:
		return knowledge.AgeAdult
	}
}

// ParseAge coerces a decoded JSON value to an integer age. Numbers are
// truncated toward zero, strings must hold an integer, nil yields DefaultAge.
func ParseAge(v any) (int, error) {
	switch a := v.(type) {
	case nil:
		return DefaultAge, nil
	case int:
		return a, nil
	case int64:
		return int(a), nil
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) || math.Abs(a) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidAge, a)
		}
		return int(a), nil
	case json.Number:
		if n, err := a.Int64(); err == nil {
			return int(n), nil
		}
		f, err := a.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAge, a.String())
		}
		return ParseAge(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAge, a)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAge, v)
	}
}
