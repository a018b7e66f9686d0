// Copyright © 2024 The ELPS authors

package datatype

import "fmt"

// Sex is the recorded sex of a Person.
type Sex int

const (
	Male Sex = iota + 1
	Female
)

// NewSex parses "Male" or "Female".
func NewSex(name string) (Sex, error) {
	switch name {
	case "Male":
		return Male, nil
	case "Female":
		return Female, nil
	default:
		return 0, invalid("sex", "name", name)
	}
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Sex(?)"
	}
}

// AgeOfMajority is the age at which a Person stops being a minor.
const AgeOfMajority = 18

// Person is a validated personal record.
type Person struct {
	Name    string
	Surname string
	Age     int
	Sex     Sex
}

// NewPerson validates its arguments and returns a Person.
func NewPerson(name, surname string, age int, sex Sex) (Person, error) {
	switch {
	case name == "":
		return Person{}, invalid("person", "name", name)
	case surname == "":
		return Person{}, invalid("person", "surname", surname)
	case age < 0:
		return Person{}, invalid("person", "age", age)
	case sex != Male && sex != Female:
		return Person{}, invalid("person", "sex", int(sex))
	}
	return Person{Name: name, Surname: surname, Age: age, Sex: sex}, nil
}

func (p Person) String() string {
	return fmt.Sprintf("%s %s (%d, %s)", p.Name, p.Surname, p.Age, p.Sex)
}

// FitForService reports whether p is an adult male.
func FitForService(p Person) bool {
	return p.Sex == Male && p.Age >= AgeOfMajority
}

// IsMinor reports whether p is younger than AgeOfMajority.
func IsMinor(p Person) bool {
	return p.Age < AgeOfMajority
}
