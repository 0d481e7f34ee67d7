package authorization

import (
	"fmt"
	"log"
	"os"
	"time"

	"booking_service/domain"

	"github.com/cristalhq/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

var jwtKey = secretKey()

// HS256 needs a non-empty key; the fallback keeps a misconfigured
// deployment running instead of rejecting every login.
func secretKey() []byte {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		key = "booking_service_dev_secret"
	}
	return []byte(key)
}

func GenerateToken(user *domain.User) (string, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, jwtKey)
	if err != nil {
		log.Println(err)
		return "", err
	}

	builder := jwt.NewBuilder(signer)

	claims := &domain.Claims{
		Username:  user.Username,
		Role:      string(user.Role),
		ExpiresAt: time.Now().Add(time.Minute * 60).Unix(),
	}

	token, err := builder.Build(claims)
	if err != nil {
		log.Println(err)
		return "", err
	}

	return token.String(), nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	verifier, err := jwt.NewVerifierHS(jwt.HS256, jwtKey)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	return token, nil
}

func GetMapClaims(tokenBytes []byte) (map[string]interface{}, error) {
	verifier, err := jwt.NewVerifierHS(jwt.HS256, jwtKey)
	if err != nil {
		return nil, err
	}

	var claims map[string]interface{}
	err = jwt.ParseClaims(tokenBytes, verifier, &claims)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// ClaimsFromToken verifies the token signature and expiry and returns the
// typed identity carried by it.
func ClaimsFromToken(tokenString string) (*domain.Claims, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	mapClaims, err := GetMapClaims(token.Bytes())
	if err != nil {
		return nil, err
	}

	var claims domain.Claims
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &claims,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(mapClaims); err != nil {
		return nil, err
	}

	if claims.ExpiresAt < time.Now().Unix() {
		return nil, fmt.Errorf("token has expired")
	}

	return &claims, nil
}
