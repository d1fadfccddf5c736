package services

import (
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/model"
	"github.com/disparador-app/disparador_api/shared"
)

// DeviceService manages anonymous per-device sessions. No registration, no
// credentials: a device id is enough to get a bearer token and a stats blob.
type DeviceService struct {
	context.DefaultService

	sqlSvc *SqliteService
	jwtSvc *JWTService
}

const DEVICE_SVC = "device_svc"

func (svc DeviceService) Id() string {
	return DEVICE_SVC
}

func (svc *DeviceService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *DeviceService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

// CreateOrGetSession returns the existing session for deviceID or creates a
// new one, issuing a fresh token either way.
func (svc *DeviceService) CreateOrGetSession(deviceID string) (*dto.DeviceSessionResponse, error) {
	session, err := svc.sqlSvc.GetSessionByDeviceID(deviceID)
	if err == nil && session != nil {
		session.LastActivity = time.Now()
		if err := svc.sqlSvc.UpdateSession(session); err != nil {
			log.Printf("Failed to update session activity: %v", err)
		}
		return svc.sessionResponse(session)
	}

	sessionID, _ := uuid.NewV7()
	session = &model.DeviceSession{
		ID:           sessionID.String(),
		DeviceID:     deviceID,
		SessionStart: time.Now(),
		LastActivity: time.Now(),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	session, err = svc.sqlSvc.CreateSession(session)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create session")
	}

	return svc.sessionResponse(session)
}

func (svc *DeviceService) sessionResponse(session *model.DeviceSession) (*dto.DeviceSessionResponse, error) {
	token, expiresAt, err := svc.jwtSvc.ToJWT(session.DeviceID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue session token")
	}

	return &dto.DeviceSessionResponse{
		SessionID: session.ID,
		DeviceID:  session.DeviceID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
