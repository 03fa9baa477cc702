package config

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/odpf/shelflife/core/shelflife"
)

// Validate validate the config as an input. If not valid, it returns error
func Validate(conf *ClientConfig) error {
	return validation.ValidateStruct(conf,
		validation.Field(&conf.Version, validation.Required),
		nestedFields(&conf.Log,
			validation.Field(&conf.Log.Level, validation.In(
				LogLevelDebug,
				LogLevelInfo,
				LogLevelWarning,
				LogLevelError,
				LogLevelFatal,
			)),
			validation.Field(&conf.Log.Format, validation.In(LogFormatPlain, LogFormatJSON)),
		),
		validation.Field(&conf.Collection, validation.Required, validation.By(validateCollection)),
		nestedFields(&conf.Cluster,
			validation.Field(&conf.Cluster.Timeout, validation.Min(0)),
		),
		nestedFields(&conf.Store,
			validation.Field(&conf.Store.Driver, validation.Required, validation.In(StoreDriverPostgres, StoreDriverSQLite)),
			validation.Field(&conf.Store.Port, validation.Min(0), validation.Max(65535)),
			validation.Field(&conf.Store.MaxIdleConnection, validation.Min(0)),
			validation.Field(&conf.Store.MaxOpenConnection, validation.Min(0)),
		),
	)
}

// ValidateCluster checks the settings needed by commands that call the cluster api
func ValidateCluster(conf ClusterConfig) error {
	return validation.ValidateStruct(&conf,
		validation.Field(&conf.Host, validation.Required),
		validation.Field(&conf.Token, validation.Required),
	)
}

func validateCollection(value interface{}) error {
	name, _ := value.(string)
	_, err := shelflife.CollectionFrom(name)
	return err
}

// ozzo-validation helper for nested validation struct
// https://github.com/go-ozzo/ozzo-validation/issues/136
func nestedFields(target interface{}, fieldRules ...*validation.FieldRules) *validation.FieldRules {
	return validation.Field(target, validation.By(func(value interface{}) error {
		valueV := reflect.Indirect(reflect.ValueOf(value))
		if valueV.CanAddr() {
			addr := valueV.Addr().Interface()
			return validation.ValidateStruct(addr, fieldRules...)
		}
		return validation.ValidateStruct(target, fieldRules...)
	}))
}
