package configuration

import (
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
)

// secondsToDurationHookFunc decodes plain numbers into a time.Duration of that many seconds.
// Strings holding a whole number, as read from the environment, are seconds too.
// Any other string is left to StringToTimeDurationHookFunc.
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != durationType {
			return data, nil
		}

		switch v := data.(type) {
		case int:
			return time.Duration(v) * time.Second, nil
		case int64:
			return time.Duration(v) * time.Second, nil
		case float64:
			return time.Duration(v * float64(time.Second)), nil
		case string:
			if seconds, err := strconv.Atoi(v); err == nil {
				return time.Duration(seconds) * time.Second, nil
			}
		}
		return data, nil
	}
}
