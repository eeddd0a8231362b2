package clusters

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Default column names of an upstream positioning table.
const (
	DefaultErrorField   = "HPEm"
	DefaultClusterField = "URX"
)

// Record is one untyped row of an estimates table. Columns other than the
// ones named in Fields are ignored.
type Record map[string]any

// Fields maps the error and cluster columns of a Record.
type Fields struct {
	Error   string `json:"error_field"`
	Cluster string `json:"cluster_field"`
}

// DefaultFields returns the HPEm/URX column mapping.
func DefaultFields() Fields {
	return Fields{Error: DefaultErrorField, Cluster: DefaultClusterField}
}

// validate rejects a mapping that reads both values from one column.
func (f Fields) validate() error {
	if f.Error == f.Cluster {
		return paramError("cluster_field", "must differ from error_field, both are %q", f.Error)
	}
	return nil
}

func (f Fields) withDefaults() Fields {
	if strings.TrimSpace(f.Error) == "" {
		f.Error = DefaultErrorField
	}
	if strings.TrimSpace(f.Cluster) == "" {
		f.Cluster = DefaultClusterField
	}
	return f
}

// EstimatesFromRecords maps records onto Estimates using fields. Blank field
// names fall back to DefaultFields. Records are read, never modified.
func EstimatesFromRecords(records []Record, fields Fields) ([]Estimate, error) {
	fields = fields.withDefaults()
	if err := fields.validate(); err != nil {
		return nil, err
	}
	out := make([]Estimate, 0, len(records))
	for i, r := range records {
		rawErr, ok := r[fields.Error]
		if !ok {
			return nil, rowError(i, fields.Error, "missing required field")
		}
		errValue, err := toFloat64(rawErr)
		if err != nil {
			return nil, rowError(i, fields.Error, "%v", err)
		}

		rawCluster, ok := r[fields.Cluster]
		if !ok {
			return nil, rowError(i, fields.Cluster, "missing required field")
		}
		clusterID, err := toClusterID(rawCluster)
		if err != nil {
			return nil, rowError(i, fields.Cluster, "%v", err)
		}

		out = append(out, Estimate{Error: errValue, ClusterID: clusterID})
	}
	return out, nil
}

// toFloat64 converts a decoded column value to float64.
func toFloat64(v any) (float64, error) {
	if isNil(v) {
		return 0, fmt.Errorf("value is null")
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int8:
		return float64(val), nil
	case int16:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint:
		return float64(val), nil
	case uint8:
		return float64(val), nil
	case uint16:
		return float64(val), nil
	case uint32:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("non-numeric value %q", val.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric value %q", val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("non-numeric value of type %T", v)
	}
}

// toClusterID converts a decoded column value to a cluster identifier. Plain
// strings are trimmed and numbers are formatted in their shortest form;
// receiver lists go through NewClusterID.
func toClusterID(v any) (string, error) {
	if isNil(v) {
		return "", fmt.Errorf("value is null")
	}
	if s, ok, err := scalarID(v); ok {
		if err != nil {
			return "", err
		}
		return s, nil
	}

	switch val := v.(type) {
	case []string:
		return receiverListID(val)
	case []any:
		names := make([]string, len(val))
		for i, item := range val {
			if isNil(item) {
				return "", fmt.Errorf("receiver %d is null", i)
			}
			s, ok, err := scalarID(item)
			if !ok {
				return "", fmt.Errorf("receiver %d is %T, want string or number", i, item)
			}
			if err != nil {
				return "", fmt.Errorf("receiver %d: %v", i, err)
			}
			names[i] = s
		}
		return receiverListID(names)
	default:
		return "", fmt.Errorf("unsupported cluster identifier type %T", v)
	}
}

// scalarID formats a single identifier value. ok is false for types that are
// not scalar identifiers.
func scalarID(v any) (id string, ok bool, err error) {
	switch val := v.(type) {
	case string:
		id = strings.TrimSpace(val)
	case json.Number:
		id = strings.TrimSpace(val.String())
	case int:
		id = strconv.FormatInt(int64(val), 10)
	case int8:
		id = strconv.FormatInt(int64(val), 10)
	case int16:
		id = strconv.FormatInt(int64(val), 10)
	case int32:
		id = strconv.FormatInt(int64(val), 10)
	case int64:
		id = strconv.FormatInt(val, 10)
	case uint:
		id = strconv.FormatUint(uint64(val), 10)
	case uint8:
		id = strconv.FormatUint(uint64(val), 10)
	case uint16:
		id = strconv.FormatUint(uint64(val), 10)
	case uint32:
		id = strconv.FormatUint(uint64(val), 10)
	case uint64:
		id = strconv.FormatUint(val, 10)
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return "", true, fmt.Errorf("non-finite identifier %v", val)
		}
		id = strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "", true, fmt.Errorf("non-finite identifier %v", val)
		}
		id = strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		id = strings.TrimSpace(val.String())
	default:
		return "", false, nil
	}
	if id == "" {
		return "", true, fmt.Errorf("value is blank")
	}
	return id, true, nil
}

// isNil reports whether v is nil or a typed nil pointer, map, slice or
// interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func receiverListID(names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("receiver list is empty")
	}
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return "", fmt.Errorf("receiver %d has a blank name", i)
		}
	}
	return NewClusterID(names...)
}
