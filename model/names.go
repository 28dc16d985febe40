package model

import "fmt"

// Variable naming conventions, authoritative per §6.4. Keeping these as the
// literal ilp.Var.Name means a solution file can be parsed back without a
// separate index table.

func fName(i, j, u, v string) string {
	return fmt.Sprintf("f(%s,%s)[%s,%s]", i, j, u, v)
}

func nName(i, u string) string {
	return fmt.Sprintf("n(%s)[%s]", i, u)
}

func gName(i, u string) string {
	return fmt.Sprintf("g(%s)[%s]", i, u)
}

func fSubjectName(i string, p int, j string, q int, u, v string) string {
	return fmt.Sprintf("f(%s:%d,%s:%d)[%s,%s]", i, p, j, q, u, v)
}

func bName(i string, p int, u string) string {
	return fmt.Sprintf("b(%s:%d)[%s]", i, p, u)
}

func gSubjectName(i string, p int, u string) string {
	return fmt.Sprintf("g(%s:%d)[%s]", i, p, u)
}
