package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type fakeUserRepo struct {
	users map[uint]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]models.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	var users []models.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uint(len(f.users) + 1)
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id uint) error {
	user, ok := f.users[id]
	if !ok || !user.Active {
		return gorm.ErrRecordNotFound
	}
	user.Active = false
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = passwordHash
	f.users[id] = user
	return nil
}

type fakeSkillRepo struct {
	skills map[uint]models.Skill
}

func newFakeSkillRepo(skills ...models.Skill) *fakeSkillRepo {
	repo := &fakeSkillRepo{skills: map[uint]models.Skill{}}
	for _, skill := range skills {
		repo.skills[skill.ID] = skill
	}
	return repo
}

func (f *fakeSkillRepo) List(ctx context.Context, filter repository.SkillFilter) ([]models.Skill, error) {
	var skills []models.Skill
	for _, skill := range f.skills {
		skills = append(skills, skill)
	}
	return skills, nil
}

func (f *fakeSkillRepo) GetByID(ctx context.Context, id uint) (models.Skill, error) {
	skill, ok := f.skills[id]
	if !ok {
		return models.Skill{}, gorm.ErrRecordNotFound
	}
	return skill, nil
}

func (f *fakeSkillRepo) GetActiveByIDs(ctx context.Context, ids []uint) ([]models.Skill, error) {
	var skills []models.Skill
	for _, id := range ids {
		if skill, ok := f.skills[id]; ok && skill.Active {
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

func (f *fakeSkillRepo) Create(ctx context.Context, skill *models.Skill) error {
	skill.ID = uint(len(f.skills) + 1)
	f.skills[skill.ID] = *skill
	return nil
}

func (f *fakeSkillRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Skill, error) {
	skill, ok := f.skills[id]
	if !ok {
		return models.Skill{}, gorm.ErrRecordNotFound
	}
	return skill, nil
}

func (f *fakeSkillRepo) Deactivate(ctx context.Context, id uint) error {
	skill, ok := f.skills[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	skill.Active = false
	f.skills[id] = skill
	return nil
}

type fakeCompletionRepo struct {
	completions []models.Completion
	nextID      uint
	grantCalls  int
	lastGrants  []repository.SkillGrant
}

func newFakeCompletionRepo(completions ...models.Completion) *fakeCompletionRepo {
	repo := &fakeCompletionRepo{}
	for _, completion := range completions {
		if completion.ID > repo.nextID {
			repo.nextID = completion.ID
		}
		repo.completions = append(repo.completions, completion)
	}
	return repo
}

func (f *fakeCompletionRepo) ListByUser(ctx context.Context, userID uint) ([]models.Completion, error) {
	var result []models.Completion
	for _, completion := range f.completions {
		if completion.UserID == userID {
			result = append(result, completion)
		}
	}
	return result, nil
}

func (f *fakeCompletionRepo) ExistsForUserSkill(ctx context.Context, userID, skillID uint) (bool, error) {
	for _, completion := range f.completions {
		if completion.UserID == userID && completion.SkillID == skillID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompletionRepo) GetByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Completion, error) {
	var result []models.Completion
	for _, id := range ids {
		for _, completion := range f.completions {
			if completion.ID == id && completion.UserID == userID {
				result = append(result, completion)
			}
		}
	}
	return result, nil
}

func (f *fakeCompletionRepo) GrantBatch(ctx context.Context, userID uint, grants []repository.SkillGrant) error {
	f.grantCalls++
	f.lastGrants = grants
	for _, grant := range grants {
		f.nextID++
		f.completions = append(f.completions, models.Completion{
			ID:      f.nextID,
			UserID:  userID,
			SkillID: grant.Skill.ID,
			Skill:   grant.Skill,
		})
	}
	return nil
}

func (f *fakeCompletionRepo) add(completion models.Completion) {
	if completion.ID == 0 {
		f.nextID++
		completion.ID = f.nextID
	} else if completion.ID > f.nextID {
		f.nextID = completion.ID
	}
	f.completions = append(f.completions, completion)
}

type fakeSubmissionRepo struct {
	submissions map[uint]models.Submission
	nextID      uint
	completions *fakeCompletionRepo
}

func newFakeSubmissionRepo(completions *fakeCompletionRepo, submissions ...models.Submission) *fakeSubmissionRepo {
	repo := &fakeSubmissionRepo{submissions: map[uint]models.Submission{}, completions: completions}
	for _, submission := range submissions {
		if submission.ID > repo.nextID {
			repo.nextID = submission.ID
		}
		repo.submissions[submission.ID] = submission
	}
	return repo
}

func (f *fakeSubmissionRepo) List(ctx context.Context, filter repository.SubmissionFilter) ([]models.Submission, error) {
	var result []models.Submission
	for _, submission := range f.submissions {
		if filter.UserID != nil && submission.UserID != *filter.UserID {
			continue
		}
		if filter.SkillID != nil && submission.SkillID != *filter.SkillID {
			continue
		}
		if filter.Status != nil && submission.Status != *filter.Status {
			continue
		}
		if filter.UserIDs != nil {
			found := false
			for _, id := range filter.UserIDs {
				if submission.UserID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, submission)
	}
	return result, nil
}

func (f *fakeSubmissionRepo) GetByID(ctx context.Context, id uint) (models.Submission, error) {
	submission, ok := f.submissions[id]
	if !ok {
		return models.Submission{}, gorm.ErrRecordNotFound
	}
	return submission, nil
}

func (f *fakeSubmissionRepo) FindOpen(ctx context.Context, userID, skillID uint) (models.Submission, error) {
	for _, submission := range f.submissions {
		if submission.UserID == userID && submission.SkillID == skillID && submission.IsOpen() {
			return submission, nil
		}
	}
	return models.Submission{}, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submission *models.Submission) error {
	f.nextID++
	submission.ID = f.nextID
	f.submissions[submission.ID] = *submission
	return nil
}

func (f *fakeSubmissionRepo) Decide(ctx context.Context, submission *models.Submission, approved bool) error {
	f.submissions[submission.ID] = *submission
	if !approved || f.completions == nil {
		return nil
	}

	exists, _ := f.completions.ExistsForUserSkill(ctx, submission.UserID, submission.SkillID)
	if !exists {
		f.completions.add(models.Completion{UserID: submission.UserID, SkillID: submission.SkillID})
	}
	return nil
}

type fakeClassRepo struct {
	classes          map[uint]models.Class
	membersByTrainer map[uint][]uint
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: map[uint]models.Class{}, membersByTrainer: map[uint][]uint{}}
}

func (f *fakeClassRepo) List(ctx context.Context, filter repository.ClassFilter) ([]models.Class, error) {
	var classes []models.Class
	for _, class := range f.classes {
		classes = append(classes, class)
	}
	return classes, nil
}

func (f *fakeClassRepo) GetByID(ctx context.Context, id uint) (models.Class, error) {
	class, ok := f.classes[id]
	if !ok {
		return models.Class{}, gorm.ErrRecordNotFound
	}
	return class, nil
}

func (f *fakeClassRepo) Create(ctx context.Context, class *models.Class) error {
	class.ID = uint(len(f.classes) + 1)
	f.classes[class.ID] = *class
	return nil
}

func (f *fakeClassRepo) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Class, error) {
	class, ok := f.classes[id]
	if !ok {
		return models.Class{}, gorm.ErrRecordNotFound
	}
	return class, nil
}

func (f *fakeClassRepo) Deactivate(ctx context.Context, id uint) error {
	class, ok := f.classes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	class.Active = false
	f.classes[id] = class
	return nil
}

func (f *fakeClassRepo) MemberUserIDs(ctx context.Context, trainerID uint) ([]uint, error) {
	return f.membersByTrainer[trainerID], nil
}

type fakeProfileRepo struct {
	profiles map[uint]models.Profile
	nextID   uint
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]models.Profile{}}
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uint) (models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return models.Profile{}, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	if existing, ok := f.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
	} else {
		f.nextID++
		profile.ID = f.nextID
	}
	f.profiles[profile.UserID] = *profile
	return nil
}

type fakeCertificateRepo struct {
	certificates map[uint]models.Certificate
	nextID       uint
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{certificates: map[uint]models.Certificate{}}
}

func (f *fakeCertificateRepo) ListByUser(ctx context.Context, userID uint) ([]models.Certificate, error) {
	var certificates []models.Certificate
	for _, certificate := range f.certificates {
		if certificate.Grade.UserID == userID {
			certificates = append(certificates, certificate)
		}
	}
	return certificates, nil
}

func (f *fakeCertificateRepo) GetByID(ctx context.Context, id uint) (models.Certificate, error) {
	certificate, ok := f.certificates[id]
	if !ok {
		return models.Certificate{}, gorm.ErrRecordNotFound
	}
	return certificate, nil
}

func (f *fakeCertificateRepo) GetByGradeID(ctx context.Context, gradeID uint) (models.Certificate, error) {
	for _, certificate := range f.certificates {
		if certificate.GradeID == gradeID {
			return certificate, nil
		}
	}
	return models.Certificate{}, gorm.ErrRecordNotFound
}

func (f *fakeCertificateRepo) Create(ctx context.Context, certificate *models.Certificate) error {
	f.nextID++
	certificate.ID = f.nextID
	f.certificates[certificate.ID] = *certificate
	return nil
}

func (f *fakeCertificateRepo) UpdateStatus(ctx context.Context, id uint, status string) (models.Certificate, error) {
	certificate, ok := f.certificates[id]
	if !ok {
		return models.Certificate{}, gorm.ErrRecordNotFound
	}
	certificate.Status = status
	f.certificates[id] = certificate
	return certificate, nil
}

type fakeGradeRepo struct {
	grades      []models.Grade
	links       map[uint][]uint
	nextID      uint
	achieveErrs []error
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{links: map[uint][]uint{}}
}

func (f *fakeGradeRepo) ListByUser(ctx context.Context, userID uint) ([]models.Grade, error) {
	var grades []models.Grade
	for _, grade := range f.grades {
		if grade.UserID == userID {
			grades = append(grades, grade)
		}
	}
	return grades, nil
}

func (f *fakeGradeRepo) GetByUserAndNumber(ctx context.Context, userID uint, gradeNumber int) (models.Grade, error) {
	for _, grade := range f.grades {
		if grade.UserID == userID && grade.GradeNumber == gradeNumber {
			return grade, nil
		}
	}
	return models.Grade{}, gorm.ErrRecordNotFound
}

func (f *fakeGradeRepo) LastGradeNumber(ctx context.Context, userID uint) (int, error) {
	last := 0
	for _, grade := range f.grades {
		if grade.UserID == userID && grade.GradeNumber > last {
			last = grade.GradeNumber
		}
	}
	return last, nil
}

func (f *fakeGradeRepo) ConsumedCompletionIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	for _, grade := range f.grades {
		if grade.UserID != userID {
			continue
		}
		ids = append(ids, f.links[grade.ID]...)
	}
	return ids, nil
}

func (f *fakeGradeRepo) AchieveWithCompletions(ctx context.Context, grade *models.Grade, completionIDs []uint) error {
	if len(f.achieveErrs) > 0 {
		err := f.achieveErrs[0]
		f.achieveErrs = f.achieveErrs[1:]
		if err != nil {
			return err
		}
	}
	f.nextID++
	grade.ID = f.nextID
	f.grades = append(f.grades, *grade)
	f.links[grade.ID] = append([]uint(nil), completionIDs...)
	return nil
}
