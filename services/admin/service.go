package admin

import (
	"context"
	"errors"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	authpkg "github.com/refleksjon/coach-sync/pkg/auth"
	"github.com/refleksjon/coach-sync/pkg/invite"
	club "github.com/refleksjon/coach-sync/repos/club"
	resend "github.com/refleksjon/coach-sync/repos/resend"
)

var (
	ErrInvalidInvite = errors.New("not valid invite code")
	ErrUnknownRole   = errors.New("unknown role")
)

type AdminService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	resendService   *resend.Service
}

func NewAdminService(firestoreClient *firestore.Client, firebaseApp *firebase.App, resendService *resend.Service) *AdminService {
	return &AdminService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		resendService:   resendService,
	}
}

func (s *AdminService) teamSecret(ctx context.Context) (string, error) {
	doc, err := s.firestoreClient.Collection("teamConfig").Doc("default").Get(ctx)
	if err != nil {
		log.Printf("Failed to get team config from Firestore: %v\n", err)
		return "", err
	}

	data := doc.Data()
	fieldValue, ok := data["inviteSecret"]
	if !ok {
		log.Printf("Field 'inviteSecret' does not exist in the document.")
		return "", ErrInvalidInvite
	}

	secretString, ok := fieldValue.(string)
	if !ok {
		log.Printf("Failed to convert field value 'inviteSecret' to string.")
		return "", ErrInvalidInvite
	}
	return secretString, nil
}

// InviteAssistant mails an invite code that grants the assistantCoach role
// when redeemed.
func (s *AdminService) InviteAssistant(c *gin.Context, request resend.InviteRequest) error {
	secret, err := s.teamSecret(c)
	if err != nil {
		return err
	}

	inviteCode := invite.GenerateCode(secret)
	return s.resendService.SendInvite(c, request, inviteCode)
}

// RedeemInvite verifies the embedded team secret and flags the caller's user
// profile as an approved assistant coach.
func (s *AdminService) RedeemInvite(c *gin.Context, inviteCode string) error {
	uid := authpkg.UID(c)

	secret, _, err := invite.Decode(inviteCode)
	if err != nil {
		return ErrInvalidInvite
	}

	teamSecret, err := s.teamSecret(c)
	if err != nil {
		return err
	}
	if secret != teamSecret {
		return ErrInvalidInvite
	}

	userRef := s.firestoreClient.Collection("users").Doc(uid)
	err = s.firestoreClient.RunTransaction(c, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(userRef); err != nil {
			return club.ErrUserNotFound
		}
		return tx.Update(userRef, []firestore.Update{
			{Path: "role", Value: club.RoleAssistantCoach},
			{Path: "approved", Value: true},
		})
	})
	if err != nil {
		log.Printf("Failed to update user document: %v\n", err)
		return err
	}
	return nil
}

// ApproveUser sets a user's role and approval flag.
func (s *AdminService) ApproveUser(c *gin.Context, uid, role string) error {
	switch role {
	case club.RoleCoach, club.RoleAssistantCoach, club.RolePlayer:
	default:
		return ErrUnknownRole
	}

	_, err := s.firestoreClient.Collection("users").Doc(uid).Update(c, []firestore.Update{
		{Path: "role", Value: role},
		{Path: "approved", Value: true},
	})
	if err != nil {
		log.Printf("Failed to approve user in Firestore: %v\n", err)
		return err
	}
	return nil
}
