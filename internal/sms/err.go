package sms

import (
	"errors"

	"github.com/thelolagemann/gosms/pkg/translate"
)

var f = translate.From

// ErrStepLimit is returned by Run once the configured step limit has
// been reached.
var ErrStepLimit = errors.New(f("step limit reached"))
