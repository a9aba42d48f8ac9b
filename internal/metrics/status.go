// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/pocschain/internal/model"

const namespace = "pocs"

// status labels an outcome by its error class.
func status(err error) string {
	if err == nil {
		return "success"
	}
	if class := model.ClassOf(err); class != model.ClassUnknown {
		return class.String()
	}
	return "error"
}
