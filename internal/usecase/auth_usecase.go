package usecase

import (
	"fmt"

	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"
	"reel-bites/pkg/jwt"
	"reel-bites/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	RegisterUser(fullName, email, password, phone string) (*entity.User, string, error)
	LoginUser(email, password string) (*entity.User, string, error)
	RegisterFoodPartner(name, contactName, email, password, phone, address string) (*entity.FoodPartner, string, error)
	LoginFoodPartner(email, password string) (*entity.FoodPartner, string, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	partnerRepo persistent.FoodPartnerRepository
	jwtService  *jwt.Service
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	partnerRepo persistent.FoodPartnerRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *authUseCase) RegisterUser(fullName, email, password, phone string) (*entity.User, string, error) {
	exists, err := uc.userRepo.EmailExists(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashedPassword),
		Phone:    phone,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, jwt.ActorUser)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) LoginUser(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, jwt.ActorUser)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) RegisterFoodPartner(name, contactName, email, password, phone, address string) (*entity.FoodPartner, string, error) {
	exists, err := uc.partnerRepo.EmailExists(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	partner := &entity.FoodPartner{
		Name:        name,
		ContactName: contactName,
		Email:       email,
		Password:    string(hashedPassword),
		Phone:       phone,
		Address:     address,
	}

	if err := uc.partnerRepo.Create(partner); err != nil {
		uc.logger.Error("Failed to create food partner: %v", err)
		return nil, "", fmt.Errorf("failed to create food partner")
	}

	token, err := uc.jwtService.GenerateToken(partner.ID, jwt.ActorFoodPartner)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	partner.Password = ""
	return partner, token, nil
}

func (uc *authUseCase) LoginFoodPartner(email, password string) (*entity.FoodPartner, string, error) {
	partner, err := uc.partnerRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(partner.ID, jwt.ActorFoodPartner)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	partner.Password = ""
	return partner, token, nil
}
