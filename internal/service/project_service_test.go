package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-membership-service/internal/model"
	"team-membership-service/internal/service"
	"team-membership-service/internal/service/mocks"
)

func validProject() model.Project {
	return model.Project{
		ProjectID:     "p-1",
		Status:        model.StatusPublished,
		Priority:      model.PriorityHigh,
		DefaultLocale: "en",
		Info: []model.ProjectInfo{
			{Locale: "en", Name: "Flood mapping", ShortDescription: "Map flooded areas"},
			{Locale: "pt", Name: "Mapeamento de inundações"},
		},
	}
}

func TestProjectService_UpdateInfo(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *model.Project)
		setupMocks func(pr *mocks.ProjectRepository)
		wantErr    bool
	}{
		{
			name:   "Success",
			mutate: func(p *model.Project) {},
			setupMocks: func(pr *mocks.ProjectRepository) {
				pr.On("UpdateMetadata", mock.Anything, validProject()).
					Return(validProject(), nil)
			},
		},
		{
			name:       "Fail: unknown status",
			mutate:     func(p *model.Project) { p.Status = "LIVE" },
			setupMocks: func(pr *mocks.ProjectRepository) {},
			wantErr:    true,
		},
		{
			name:       "Fail: unknown priority",
			mutate:     func(p *model.Project) { p.Priority = "CRITICAL" },
			setupMocks: func(pr *mocks.ProjectRepository) {},
			wantErr:    true,
		},
		{
			name:       "Fail: default locale has no name",
			mutate:     func(p *model.Project) { p.Info[0].Name = "" },
			setupMocks: func(pr *mocks.ProjectRepository) {},
			wantErr:    true,
		},
		{
			name:       "Fail: default locale missing from info",
			mutate:     func(p *model.Project) { p.DefaultLocale = "fr" },
			setupMocks: func(pr *mocks.ProjectRepository) {},
			wantErr:    true,
		},
		{
			name:       "Fail: duplicate locale",
			mutate:     func(p *model.Project) { p.Info[1].Locale = "en" },
			setupMocks: func(pr *mocks.ProjectRepository) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := new(mocks.ProjectRepository)
			tt.setupMocks(pr)

			p := validProject()
			tt.mutate(&p)

			svc := service.NewProjectService(pr)
			_, err := svc.UpdateInfo(context.Background(), p)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			pr.AssertExpectations(t)
		})
	}
}
