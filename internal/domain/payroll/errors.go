package payroll

import "errors"

var ErrPayrollNotFound = errors.New("Payroll record not found")
