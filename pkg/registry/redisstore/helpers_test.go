package redisstore_test

import (
	"github.com/goliatone/go-dynamicform/pkg/model"
	"github.com/goliatone/go-dynamicform/pkg/options"
)

func registryRecord(container string) options.Record {
	return options.Record{
		Fields:          []options.Field{{ID: "form-{}-number", Name: "Form[{}][number]"}},
		FormID:          "form",
		InsertPosition:  model.InsertBottom,
		Limit:           model.DefaultLimit,
		Min:             model.DefaultMin,
		WidgetBody:      ".items",
		WidgetContainer: container,
		WidgetItem:      ".item",
	}
}
