package models_test

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
)

func (suite *TestSuiteStandard) TestHolidayNormalizedToMidnight() {
	holiday := models.Holiday{
		Date: time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC),
		Name: "元日",
	}
	suite.Require().NoError(models.DB.Create(&holiday).Error)

	suite.Assert().Equal(date(2026, 1, 1), holiday.Date)
}

func (suite *TestSuiteStandard) TestHolidayUnique() {
	suite.Require().NoError(models.DB.Create(&models.Holiday{Date: date(2026, 1, 1), Name: "元日"}).Error)

	err := models.DB.Create(&models.Holiday{Date: date(2026, 1, 1), Name: "duplicate"}).Error
	suite.Assert().Error(err)
}

func (suite *TestSuiteStandard) TestLoadHolidays() {
	suite.Require().NoError(models.DB.Create(&models.Holiday{Date: date(2026, 1, 1), Name: "元日"}).Error)
	suite.Require().NoError(models.DB.Create(&models.Holiday{Date: date(2026, 1, 12), Name: "成人の日"}).Error)

	set, err := models.LoadHolidays(models.DB)
	suite.Require().NoError(err)

	suite.Assert().True(set.IsHoliday(date(2026, 1, 1)))
	suite.Assert().True(set.IsHoliday(date(2026, 1, 12)))
	suite.Assert().False(set.IsHoliday(date(2026, 1, 2)))
}
