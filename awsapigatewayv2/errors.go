package awsapigatewayv2

import "fmt"

type NotFound struct {
	Name, Type string
}

func (err NotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", err.Type, err.Name)
}
