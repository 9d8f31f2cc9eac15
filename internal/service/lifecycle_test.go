package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsvanberg/offert-service/internal/model"
	"github.com/hsvanberg/offert-service/internal/service"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current model.QuoteStatus
		action  service.Action
		want    model.QuoteStatus
		wantErr bool
	}{
		{name: "send draft", current: model.QuoteStatusDraft, action: service.ActionSend, want: model.QuoteStatusSent},
		{name: "accept sent", current: model.QuoteStatusSent, action: service.ActionAccept, want: model.QuoteStatusAccepted},
		{name: "reject sent", current: model.QuoteStatusSent, action: service.ActionReject, want: model.QuoteStatusRejected},
		{name: "accept draft rejected", current: model.QuoteStatusDraft, action: service.ActionAccept, wantErr: true},
		{name: "reject draft rejected", current: model.QuoteStatusDraft, action: service.ActionReject, wantErr: true},
		{name: "send sent rejected", current: model.QuoteStatusSent, action: service.ActionSend, wantErr: true},
		{name: "accepted is terminal", current: model.QuoteStatusAccepted, action: service.ActionSend, wantErr: true},
		{name: "rejected is terminal", current: model.QuoteStatusRejected, action: service.ActionAccept, wantErr: true},
		{name: "expired has no actions", current: model.QuoteStatusExpired, action: service.ActionSend, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, err := service.Transition(tt.current, tt.action)
			if tt.wantErr {
				require.ErrorIs(t, err, service.ErrInvalidTransition)
				assert.Equal(t, tt.current, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}
