package utils

import "time"

// MonthsBetween retorna a diferença em meses inteiros entre duas datas,
// ignorando o dia do mês (mesma semântica do DATEDIFF(month) do warehouse)
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// AgeAt retorna a idade em anos completos na data de referência
func AgeAt(birthdate, reference time.Time) int {
	age := reference.Year() - birthdate.Year()

	// Desconta um ano se o aniversário ainda não ocorreu no ano de referência
	if reference.Month() < birthdate.Month() ||
		(reference.Month() == birthdate.Month() && reference.Day() < birthdate.Day()) {
		age--
	}

	return age
}
