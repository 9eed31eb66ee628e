package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// identity is a fabricated person attached to a seeded résumé. The
// dataset's résumés are anonymized, so contact details are invented.
type identity struct {
	FullName string
	Email    string
	Phone    string
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Karen", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Mark", "Sandra",
	"Steven", "Ashley", "Andrew", "Emily", "Paul", "Donna", "Joshua",
	"Michelle", "Kenneth", "Carol", "Kevin", "Amanda",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

// fabricateIdentity builds a candidate identity for a dataset row. The
// row index is folded into the email so identities stay unique even when
// name pairs repeat.
func fabricateIdentity(rowIndex int) identity {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	fullName := first + " " + last

	email := fmt.Sprintf("%s%d@example.com",
		strings.ToLower(strings.ReplaceAll(fullName, " ", ".")), rowIndex)

	phone := fmt.Sprintf("+1-%03d-%03d-%04d",
		200+rand.Intn(800), rand.Intn(1000), rand.Intn(10000))

	return identity{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
	}
}
