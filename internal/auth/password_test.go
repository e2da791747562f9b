package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter22", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if hashed == "hunter22" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword(hashed, "hunter22") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hashed, "hunter23") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("not-a-hash", "hunter22") {
		t.Error("garbage hash accepted")
	}
}
