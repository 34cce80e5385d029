package domain

import "fmt"

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer Name: %s, Email: %s", c.Name, c.Email)
}
