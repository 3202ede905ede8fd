package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LooseString is a request field that accepts any JSON scalar and keeps it as
// text: 42 becomes "42", true becomes "true", null becomes "". Objects and
// arrays are rejected. Form values bind to it as plain strings.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = LooseString(v)
	case float64:
		*s = LooseString(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*s = LooseString(strconv.FormatBool(v))
	default:
		return fmt.Errorf("cannot use %s as text", data)
	}
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
