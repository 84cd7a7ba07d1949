package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"time"
)

type OperatorService struct {
	repo *OperatorRepository
}

func NewOperatorService(repo *OperatorRepository) *OperatorService {
	return &OperatorService{repo: repo}
}

// Bootstrap seeds the initial operator from OPERATOR_USERNAME/OPERATOR_PASSWORD/
// OPERATOR_ROLE if no operator with that username exists yet. There is no public
// registration endpoint, so this is the only way an operator account comes
// into existence outside of one operator creating another by hand in Mongo.
func (s *OperatorService) Bootstrap(ctx context.Context) error {
	username := os.Getenv("OPERATOR_USERNAME")
	password := os.Getenv("OPERATOR_PASSWORD")
	role := os.Getenv("OPERATOR_ROLE")
	if username == "" || password == "" {
		log.Println("OPERATOR_USERNAME/OPERATOR_PASSWORD not set, skipping operator bootstrap")
		return nil
	}
	if role == "" {
		role = "admin"
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	log.Printf("Seeding operator %q with role %q", username, role)
	return s.repo.CreateOperator(ctx, &Operator{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
}

func (s *OperatorService) Authenticate(ctx context.Context, cred Credential) (string, error) {
	op, err := s.repo.FindByUsername(ctx, cred.Username)
	if err != nil {
		return "", err
	}
	if op == nil || !CheckPasswordHash(cred.Password, op.PasswordHash) {
		log.Printf("Invalid credentials for username: %s", cred.Username)
		return "", errors.New("invalid credentials")
	}

	token, err := GenerateJWT(op.Username, op.Role, 24*time.Hour)
	if err != nil {
		log.Printf("Token not generated for operator: %s", op.Username)
		return "", errors.New("token not generated")
	}
	log.Printf("JWT generated for operator: %s, role: %s", op.Username, op.Role)
	return token, nil
}
