package utils

import (
	"unicode"
)

// ValidaSenha checks a candidate password against the composition rules and
// returns one message per violated rule. Every rule is evaluated so the
// caller can report all problems in a single round trip; an empty slice
// means the password is acceptable.
func ValidaSenha(senha string) []string {
	var mensagens []string

	runes := []rune(senha)
	if len(runes) < 8 {
		mensagens = append(mensagens, "Senha deve possuir no mínimo 8 caracteres")
	}

	var pequenas, grandes, numeros, simbolos int
	for _, letra := range runes {
		switch {
		case unicode.IsLower(letra):
			pequenas++
		case unicode.IsUpper(letra):
			grandes++
		case unicode.IsDigit(letra):
			numeros++
		default:
			simbolos++
		}
	}

	if pequenas == 0 {
		mensagens = append(mensagens, "Senha deve possuir letra(s) minúscula(s)")
	}
	if grandes == 0 {
		mensagens = append(mensagens, "Senha deve possuir letra(s) maiúscula(s)")
	}
	if numeros == 0 {
		mensagens = append(mensagens, "Senha deve possuir número(s)")
	}
	if simbolos == 0 {
		mensagens = append(mensagens, "Senha deve possuir símbolo(s)")
	}

	return mensagens
}
