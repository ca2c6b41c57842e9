package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por código
// estável; o código chega ao front em JSON e vira status via Handle.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness responde se o erro (ou algo na cadeia dele) é um erro de
// negócio.
func IsBusiness(err error) bool {
	var be BusinessError
	return errors.As(err, &be)
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
