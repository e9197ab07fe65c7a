package services

import (
  "context"
  "fmt"
  "time"
  "gorm.io/gorm"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/types"
  "github.com/gatherle/gatherle-backend/internal/utils"
)

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) error
  LoginUser(ctx context.Context, email, password string) (string, string, error)
  RefreshUser(ctx context.Context) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
  db              *gorm.DB
  log             *logger.Logger
  userRepo        repos.UserRepo
  userTokenRepo   repos.UserTokenRepo
  jwtSecretKey    string
  accessTTL       time.Duration
  refreshTTL      time.Duration
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:             db,
    log:            serviceLog,
    userRepo:       userRepo,
    userTokenRepo:  userTokenRepo,
    jwtSecretKey:   jwtSecretKey,
    accessTTL:      accessTTL,
    refreshTTL:     refreshTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
  if user == nil {
    return fmt.Errorf("missing user")
  }
  user.Email = utils.NormalizeEmail(user.Email)
  if user.Email == "" {
    return fmt.Errorf("missing email")
  }

  exists, eErr := as.userRepo.EmailExists(ctx, nil, user.Email)
  if eErr != nil {
    return fmt.Errorf("Failed to check email: %w", eErr)
  }
  if exists {
    return fmt.Errorf("Email already registered")
  }

  hashed, hErr := utils.HashPassword(user.Password)
  if hErr != nil {
    return hErr
  }
  user.Password = hashed

  return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user.ID = uuid.New()
    if _, ucErr := as.userRepo.Create(ctx, tx, []*types.User{user}); ucErr != nil {
      return fmt.Errorf("Failed to create user in postgres: %w", ucErr)
    }
    return nil
  })
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
  email = utils.NormalizeEmail(email)

  users, usErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if usErr != nil {
    return "", "", fmt.Errorf("Error retrieving user by email: %w", usErr)
  }
  if len(users) == 0 {
    return "", "", fmt.Errorf("Invalid email")
  }

  user := users[0]
  if hErr := utils.CheckPassword(user.Password, password); hErr != nil {
    return "", "", fmt.Errorf("Invalid password")
  }

  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dtErr := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); dtErr != nil {
      return fmt.Errorf("Failed to clear stale user tokens: %w", dtErr)
    }
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("Generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:             uuid.New(),
      UserID:         user.ID,
      AccessToken:    accessToken,
      RefreshToken:   refreshToken,
      ExpiresAt:      time.Now().Add(as.refreshTTL),
    }
    if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
      as.log.Warn("Create User Token Error", "error", ctErr)
      return fmt.Errorf("Create User Token Error: %w", ctErr)
    }
    return nil
  }); err != nil {
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context) (string, string, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return "", "", fmt.Errorf("No Request Data found in context")
  }
  if rd.RefreshToken == "" {
    return "", "", fmt.Errorf("RefreshToken not found in requestdata")
  }

  var accessToken string
  var newRefreshToken string
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, ftErr := as.userTokenRepo.GetByRefreshTokens(ctx, tx, []string{rd.RefreshToken})
    if ftErr != nil {
      return fmt.Errorf("Error fetching refresh token: %w", ftErr)
    }
    if len(foundTokens) == 0 {
      return fmt.Errorf("Unknown refresh token")
    }
    existingToken := foundTokens[0]
    if existingToken.ExpiresAt.Before(time.Now()) {
      if dtErr := as.userTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dtErr != nil {
        return fmt.Errorf("Refresh token expired, error deleting: %w", dtErr)
      }
      return fmt.Errorf("Refresh token expired")
    }
    users, uErr := as.userRepo.GetByIDs(ctx, tx, []uuid.UUID{existingToken.UserID})
    if uErr != nil {
      return fmt.Errorf("Failed to load user for refresh: %w", uErr)
    }
    if len(users) == 0 {
      return fmt.Errorf("No user found for the given refresh token")
    }
    user := users[0]
    tok, genErr := as.generateAccessToken(user)
    if genErr != nil {
      return fmt.Errorf("Failed to generate new access token: %w", genErr)
    }
    accessToken = tok
    newRefreshToken = uuid.New().String()
    if dtErr := as.userTokenRepo.DeleteByIDs(ctx, tx, []uuid.UUID{existingToken.ID}); dtErr != nil {
      return fmt.Errorf("Failed to rotate refresh token: %w", dtErr)
    }
    userToken := types.UserToken{
      ID:             uuid.New(),
      UserID:         user.ID,
      AccessToken:    accessToken,
      RefreshToken:   newRefreshToken,
      ExpiresAt:      time.Now().Add(as.refreshTTL),
    }
    if _, ctErr := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); ctErr != nil {
      return fmt.Errorf("Create User Token Error: %w", ctErr)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("not authenticated")
  }
  return as.userTokenRepo.DeleteByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  claims := jwt.MapClaims{}
  token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return ctx, fmt.Errorf("invalid token")
  }

  sub, sErr := claims.GetSubject()
  if sErr != nil || sub == "" {
    return ctx, fmt.Errorf("invalid token subject")
  }
  userID, pErr := uuid.Parse(sub)
  if pErr != nil {
    return ctx, fmt.Errorf("invalid token subject")
  }

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  now := time.Now()
  claims := jwt.MapClaims{
    "sub": user.ID.String(),
    "email": user.Email,
    "iat": now.Unix(),
    "exp": now.Add(as.accessTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", fmt.Errorf("Failed to sign access token: %w", err)
  }
  return signed, nil
}
