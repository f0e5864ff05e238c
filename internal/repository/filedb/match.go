package filedb

import (
	"fmt"
	"strconv"

	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// matchesQuery проверяет, удовлетворяет ли документ запросу: каждый ключ
// запроса должен нестрого совпасть с полем документа. Особый случай:
// если поле документа — массив, а значение запроса скаляр, проверяется
// членство. Операторов диапазона/сравнения нет.
func matchesQuery(doc, query repository.Document) bool {
	for key, want := range query {
		got, ok := doc[key]
		if !ok {
			return false
		}
		if arr, isArr := got.([]interface{}); isArr && !isArray(want) {
			if !arrayContains(arr, want) {
				return false
			}
			continue
		}
		if !looseEqual(got, want) {
			return false
		}
	}
	return true
}

func arrayContains(arr []interface{}, want interface{}) bool {
	for _, item := range arr {
		if looseEqual(item, want) {
			return true
		}
	}
	return false
}

// looseEqual сравнивает значения нестрого: числа и числовые строки
// приводятся к float64, всё остальное сравнивается строковым
// представлением. Поведение зафиксировано тестами, а не отдано на откуп
// правилам приведения конкретного языка.
func looseEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		return af == bf
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isArray(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string, []int, []float64:
		return true
	default:
		return false
	}
}
