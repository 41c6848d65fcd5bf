package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

var getFields = GetFields

var errNothingToUpdate = errors.New("nothing to update")

// UpdateProfile reads name=value lines and sends them as a profile update.
func (a *App) UpdateProfile(ctx context.Context) error {
	lines, err := getFields(a.reader, "Enter profile fields as name=value", a.out)
	if err != nil {
		return err
	}

	profile, err := parseProfile(lines)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if len(profile) == 0 {
		fmt.Fprintln(a.out, "Nothing to update")
		return errNothingToUpdate
	}

	if _, err := a.authService.UpdateProfile(ctx, profile); err != nil {
		fmt.Fprintf(a.out, "Profile update failed: %s\n", a.authService.Error())
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

func parseProfile(lines []string) (models.Profile, error) {
	profile := models.Profile{}
	for _, line := range lines {
		name, value, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q, expected name=value", line)
		}
		profile[name] = strings.TrimSpace(value)
	}
	return profile, nil
}

// WhoAmI prints the current user record.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.authService.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(data))
	return nil
}
