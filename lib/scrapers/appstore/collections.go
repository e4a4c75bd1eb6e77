package appstore

// Named collections served by the RSS feed endpoint.
const (
	CollectionNewIOS            = "newapplications"
	CollectionNewFreeIOS        = "newfreeapplications"
	CollectionNewPaidIOS        = "newpaidapplications"
	CollectionTopFreeIOS        = "topfreeapplications"
	CollectionTopFreeIpad       = "topfreeipadapplications"
	CollectionTopGrossingIOS    = "topgrossingapplications"
	CollectionTopGrossingIpad   = "topgrossingipadapplications"
	CollectionTopPaidIOS        = "toppaidapplications"
	CollectionTopPaidIpad       = "toppaidipadapplications"
	CollectionTopMac            = "topmacapps"
	CollectionTopFreeMac        = "topfreemacapps"
	CollectionTopGrossingMac    = "topgrossingmacapps"
	CollectionTopPaidMac        = "toppaidmacapps"
)

// Genre ids accepted as the category segment of a feed URL.
const (
	CategoryBooks             = 6018
	CategoryBusiness          = 6000
	CategoryEducation         = 6017
	CategoryEntertainment     = 6016
	CategoryFinance           = 6015
	CategoryFoodAndDrink      = 6023
	CategoryGames             = 6014
	CategoryHealthAndFitness  = 6013
	CategoryLifestyle         = 6012
	CategoryMagazines         = 6021
	CategoryMedical           = 6020
	CategoryMusic             = 6011
	CategoryNavigation        = 6010
	CategoryNews              = 6009
	CategoryPhotoAndVideo     = 6008
	CategoryProductivity      = 6007
	CategoryReference         = 6006
	CategoryShopping          = 6024
	CategorySocialNetworking  = 6005
	CategorySports            = 6004
	CategoryTravel            = 6003
	CategoryUtilities         = 6002
	CategoryWeather           = 6001

	CategoryGamesAction       = 7001
	CategoryGamesAdventure    = 7002
	CategoryGamesArcade       = 7003
	CategoryGamesBoard        = 7004
	CategoryGamesCard         = 7005
	CategoryGamesCasino       = 7006
	CategoryGamesFamily       = 7009
	CategoryGamesMusic        = 7011
	CategoryGamesPuzzle       = 7012
	CategoryGamesRacing       = 7013
	CategoryGamesRolePlaying  = 7014
	CategoryGamesSimulation   = 7015
	CategoryGamesSports       = 7016
	CategoryGamesStrategy     = 7017
	CategoryGamesTrivia       = 7018
	CategoryGamesWord         = 7019
)
