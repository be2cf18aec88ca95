package lang

import (
	"fmt"
	"io"
)

type User struct {
	Name string
	Age  int
}

func NewUser(name string, age int) User {
	return User{Name: name, Age: age}
}

// Birthday has a pointer receiver: it mutates the User in place.
func (u *User) Birthday() {
	u.Age++
}

// Greet has a value receiver: it only reads.
func (u User) Greet() string {
	return fmt.Sprintf("hello %s, age %d", u.Name, u.Age)
}

func Structs(w io.Writer) error {
	user := NewUser("alex", 20)
	user.Birthday()
	fmt.Fprintf(w, "user: %+v, greet=%s\n", user, user.Greet())
	return nil
}
