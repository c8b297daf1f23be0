package auth

import (
	"context"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"github.com/gin-gonic/gin"

	club "github.com/refleksjon/coach-sync/repos/club"
)

func AuthMiddleware(firebaseApp *firebase.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		idToken := authHeader[len("Bearer "):]

		ctx := context.Background()
		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize Firebase Auth"})
			c.Abort()
			return
		}

		token, err := authClient.VerifyIDToken(ctx, idToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
			c.Abort()
			return
		}

		// Attach token to the context
		c.Set("token", token)

		c.Next()
	}
}

// RequireRole checks the caller's profile in the users collection. The token
// middleware must run first. A user without one of the given roles, or one
// that is not yet approved, is rejected.
func RequireRole(firestoreClient *firestore.Client, roles ...string) gin.HandlerFunc {
	clubService := club.NewService(firestoreClient)

	return func(c *gin.Context) {
		uid := UID(c)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		user, err := clubService.GetUser(c, uid)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "no user profile"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role && (user.Approved || user.Role == club.RoleCoach) {
				c.Set("role", user.Role)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "wrong role"})
		c.Abort()
	}
}

// UID returns the authenticated user's UID, or "" when the token middleware
// did not run.
func UID(c *gin.Context) string {
	value, ok := c.Get("token")
	if !ok {
		return ""
	}
	token, ok := value.(*fbauth.Token)
	if !ok {
		return ""
	}
	return token.UID
}
