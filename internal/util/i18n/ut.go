package i18n

import (
	ut "github.com/go-playground/universal-translator"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
)

// LocalsKey is the fiber.Ctx locals key holding the request's ut.Translator.
const LocalsKey = "T"

var UT = ut.New(en.New(), en.New(), zh.New())
