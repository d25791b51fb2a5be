package countries

// catalog is keyed by ISO 3166-1 alpha-3 code.
var catalog = map[string]Country{
	"ABW": {Alpha2: "AW", Name: "Aruba", Region: "NA-E", Center: Coordinates{Latitude: 12, Longitude: -69}},
	"AFG": {Alpha2: "AF", Name: "Afghanistan", Region: "AS-S", Center: Coordinates{Latitude: 33, Longitude: 67}},
	"AGO": {Alpha2: "AO", Name: "Angola", Region: "AF-C", Center: Coordinates{Latitude: -11, Longitude: 17}},
	"AIA": {Alpha2: "AI", Name: "Anguilla", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -63}},
	"ALB": {Alpha2: "AL", Name: "Albania", Region: "EU-S", Center: Coordinates{Latitude: 41, Longitude: 20}},
	"AND": {Alpha2: "AD", Name: "Andorra", Region: "EU-S", Center: Coordinates{Latitude: 42, Longitude: 1}},
	"ARE": {Alpha2: "AE", Name: "United Arab Emirates", Region: "AS-W", Center: Coordinates{Latitude: 23, Longitude: 53}},
	"ARG": {Alpha2: "AR", Name: "Argentina", Region: "SA", Center: Coordinates{Latitude: -38, Longitude: -63}},
	"ARM": {Alpha2: "AM", Name: "Armenia", Region: "AS-W", Center: Coordinates{Latitude: 40, Longitude: 45}},
	"ASM": {Alpha2: "AS", Name: "American Samoa", Region: "OC-E", Center: Coordinates{Latitude: -14, Longitude: -170}},
	"ATA": {Alpha2: "AQ", Name: "Antarctica", Region: "AN", Center: Coordinates{Latitude: -75, Longitude: 0}},
	"ATF": {Alpha2: "TF", Name: "French Southern Territories", Region: "AF-E", Center: Coordinates{Latitude: -49, Longitude: 69}},
	"ATG": {Alpha2: "AG", Name: "Antigua and Barbuda", Region: "NA-E", Center: Coordinates{Latitude: 17, Longitude: -61}},
	"AUS": {Alpha2: "AU", Name: "Australia", Region: "OC-S", Center: Coordinates{Latitude: -25, Longitude: 133}},
	"AUT": {Alpha2: "AT", Name: "Austria", Region: "EU-W", Center: Coordinates{Latitude: 47, Longitude: 14}},
	"AZE": {Alpha2: "AZ", Name: "Azerbaijan", Region: "AS-W", Center: Coordinates{Latitude: 40, Longitude: 47}},
	"BDI": {Alpha2: "BI", Name: "Burundi", Region: "AF-E", Center: Coordinates{Latitude: -3, Longitude: 29}},
	"BEL": {Alpha2: "BE", Name: "Belgium", Region: "EU-W", Center: Coordinates{Latitude: 50, Longitude: 4}},
	"BEN": {Alpha2: "BJ", Name: "Benin", Region: "AF-W", Center: Coordinates{Latitude: 9, Longitude: 2}},
	"BFA": {Alpha2: "BF", Name: "Burkina Faso", Region: "AF-W", Center: Coordinates{Latitude: 12, Longitude: -1}},
	"BGD": {Alpha2: "BD", Name: "Bangladesh", Region: "AS-S", Center: Coordinates{Latitude: 23, Longitude: 90}},
	"BGR": {Alpha2: "BG", Name: "Bulgaria", Region: "EU-E", Center: Coordinates{Latitude: 42, Longitude: 25}},
	"BHR": {Alpha2: "BH", Name: "Bahrain", Region: "AS-W", Center: Coordinates{Latitude: 25, Longitude: 50}},
	"BHS": {Alpha2: "BS", Name: "Bahamas", Region: "NA-E", Center: Coordinates{Latitude: 25, Longitude: -77}},
	"BIH": {Alpha2: "BA", Name: "Bosnia and Herzegovina", Region: "EU-S", Center: Coordinates{Latitude: 43, Longitude: 17}},
	"BLM": {Alpha2: "BL", Name: "Saint Barthélemy", Region: "NA-E", Center: Coordinates{Latitude: 17, Longitude: -62}},
	"BLR": {Alpha2: "BY", Name: "Belarus", Region: "EU-E", Center: Coordinates{Latitude: 53, Longitude: 27}},
	"BLZ": {Alpha2: "BZ", Name: "Belize", Region: "NA-S", Center: Coordinates{Latitude: 17, Longitude: -88}},
	"BMU": {Alpha2: "BM", Name: "Bermuda", Region: "NA-N", Center: Coordinates{Latitude: 32, Longitude: -64}},
	"BOL": {Alpha2: "BO", Name: "Bolivia", Region: "SA", Center: Coordinates{Latitude: -16, Longitude: -63}},
	"BRA": {Alpha2: "BR", Name: "Brazil", Region: "SA", Center: Coordinates{Latitude: -14, Longitude: -51}},
	"BRB": {Alpha2: "BB", Name: "Barbados", Region: "NA-E", Center: Coordinates{Latitude: 13, Longitude: -59}},
	"BRN": {Alpha2: "BN", Name: "Brunei Darussalam", Region: "AS-SE", Center: Coordinates{Latitude: 4, Longitude: 114}},
	"BTN": {Alpha2: "BT", Name: "Bhutan", Region: "AS-S", Center: Coordinates{Latitude: 27, Longitude: 90}},
	"BVT": {Alpha2: "BV", Name: "Bouvet Island", Region: "SA", Center: Coordinates{Latitude: -54, Longitude: 3}},
	"BWA": {Alpha2: "BW", Name: "Botswana", Region: "AF-S", Center: Coordinates{Latitude: -22, Longitude: 24}},
	"CAF": {Alpha2: "CF", Name: "Central African Republic", Region: "AF-C", Center: Coordinates{Latitude: 6, Longitude: 20}},
	"CAN": {Alpha2: "CA", Name: "Canada", Region: "NA-N", Center: Coordinates{Latitude: 56, Longitude: -106}},
	"CCK": {Alpha2: "CC", Name: "Cocos (Keeling) Islands", Region: "OC-S", Center: Coordinates{Latitude: -12, Longitude: 96}},
	"CHE": {Alpha2: "CH", Name: "Switzerland", Region: "EU-W", Center: Coordinates{Latitude: 46, Longitude: 8}},
	"CHL": {Alpha2: "CL", Name: "Chile", Region: "SA", Center: Coordinates{Latitude: -35, Longitude: -71}},
	"CHN": {Alpha2: "CN", Name: "China", Region: "AS-E", Center: Coordinates{Latitude: 35, Longitude: 104}},
	"CIV": {Alpha2: "CI", Name: "Côte d'Ivoire", Region: "AF-W", Center: Coordinates{Latitude: 7, Longitude: -5}},
	"CMR": {Alpha2: "CM", Name: "Cameroon", Region: "AF-C", Center: Coordinates{Latitude: 7, Longitude: 12}},
	"COD": {Alpha2: "CD", Name: "DR Congo", Region: "AF-C", Center: Coordinates{Latitude: -4, Longitude: 21}},
	"COG": {Alpha2: "CG", Name: "Congo", Region: "AF-C", Center: Coordinates{Latitude: 0, Longitude: 15}},
	"COK": {Alpha2: "CK", Name: "Cook Islands", Region: "OC-E", Center: Coordinates{Latitude: -21, Longitude: -159}},
	"COL": {Alpha2: "CO", Name: "Colombia", Region: "SA", Center: Coordinates{Latitude: 4, Longitude: -74}},
	"COM": {Alpha2: "KM", Name: "Comoros", Region: "AF-E", Center: Coordinates{Latitude: -11, Longitude: 43}},
	"CPV": {Alpha2: "CV", Name: "Cabo Verde", Region: "AF-W", Center: Coordinates{Latitude: 16, Longitude: -24}},
	"CRI": {Alpha2: "CR", Name: "Costa Rica", Region: "NA-S", Center: Coordinates{Latitude: 9, Longitude: -83}},
	"CUB": {Alpha2: "CU", Name: "Cuba", Region: "NA-E", Center: Coordinates{Latitude: 21, Longitude: -77}},
	"CUW": {Alpha2: "CW", Name: "Curaçao", Region: "NA-E", Center: Coordinates{Latitude: 12, Longitude: -68}},
	"CXR": {Alpha2: "CX", Name: "Christmas Island", Region: "OC-S", Center: Coordinates{Latitude: -10, Longitude: 105}},
	"CYM": {Alpha2: "KY", Name: "Cayman Islands", Region: "NA-E", Center: Coordinates{Latitude: 19, Longitude: -80}},
	"CYP": {Alpha2: "CY", Name: "Cyprus", Region: "AS-W", Center: Coordinates{Latitude: 35, Longitude: 33}},
	"CZE": {Alpha2: "CZ", Name: "Czechia", Region: "EU-E", Center: Coordinates{Latitude: 49, Longitude: 15}},
	"DEU": {Alpha2: "DE", Name: "Germany", Region: "EU-W", Center: Coordinates{Latitude: 51, Longitude: 10}},
	"DJI": {Alpha2: "DJ", Name: "Djibouti", Region: "AF-E", Center: Coordinates{Latitude: 11, Longitude: 42}},
	"DMA": {Alpha2: "DM", Name: "Dominica", Region: "NA-E", Center: Coordinates{Latitude: 15, Longitude: -61}},
	"DNK": {Alpha2: "DK", Name: "Denmark", Region: "EU-N", Center: Coordinates{Latitude: 56, Longitude: 9}},
	"DOM": {Alpha2: "DO", Name: "Dominican Republic", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -70}},
	"DZA": {Alpha2: "DZ", Name: "Algeria", Region: "AF-N", Center: Coordinates{Latitude: 28, Longitude: 1}},
	"ECU": {Alpha2: "EC", Name: "Ecuador", Region: "SA", Center: Coordinates{Latitude: -1, Longitude: -78}},
	"EGY": {Alpha2: "EG", Name: "Egypt", Region: "AF-N", Center: Coordinates{Latitude: 26, Longitude: 30}},
	"ERI": {Alpha2: "ER", Name: "Eritrea", Region: "AF-E", Center: Coordinates{Latitude: 15, Longitude: 39}},
	"ESH": {Alpha2: "EH", Name: "Western Sahara", Region: "AF-N", Center: Coordinates{Latitude: 24, Longitude: -12}},
	"ESP": {Alpha2: "ES", Name: "Spain", Region: "EU-S", Center: Coordinates{Latitude: 40, Longitude: -3}},
	"EST": {Alpha2: "EE", Name: "Estonia", Region: "EU-N", Center: Coordinates{Latitude: 58, Longitude: 25}},
	"ETH": {Alpha2: "ET", Name: "Ethiopia", Region: "AF-E", Center: Coordinates{Latitude: 9, Longitude: 40}},
	"FIN": {Alpha2: "FI", Name: "Finland", Region: "EU-N", Center: Coordinates{Latitude: 61, Longitude: 25}},
	"FJI": {Alpha2: "FJ", Name: "Fiji", Region: "OC-C", Center: Coordinates{Latitude: -16, Longitude: 179}},
	"FLK": {Alpha2: "FK", Name: "Falkland Islands (Malvinas)", Region: "SA", Center: Coordinates{Latitude: -51, Longitude: -59}},
	"FRA": {Alpha2: "FR", Name: "France", Region: "EU-W", Center: Coordinates{Latitude: 46, Longitude: 2}},
	"FRO": {Alpha2: "FO", Name: "Faroe Islands", Region: "EU-N", Center: Coordinates{Latitude: 61, Longitude: -6}},
	"FSM": {Alpha2: "FM", Name: "Micronesia", Region: "OC-N", Center: Coordinates{Latitude: 7, Longitude: 150}},
	"GAB": {Alpha2: "GA", Name: "Gabon", Region: "AF-C", Center: Coordinates{Latitude: 0, Longitude: 11}},
	"GBR": {Alpha2: "GB", Name: "United Kingdom", Region: "EU-N", Center: Coordinates{Latitude: 55, Longitude: -3}},
	"GEO": {Alpha2: "GE", Name: "Georgia", Region: "AS-W", Center: Coordinates{Latitude: 42, Longitude: 43}},
	"GGY": {Alpha2: "GG", Name: "Guernsey", Region: "EU-N", Center: Coordinates{Latitude: 49, Longitude: -2}},
	"GHA": {Alpha2: "GH", Name: "Ghana", Region: "AF-W", Center: Coordinates{Latitude: 7, Longitude: -1}},
	"GIB": {Alpha2: "GI", Name: "Gibraltar", Region: "EU-S", Center: Coordinates{Latitude: 36, Longitude: -5}},
	"GIN": {Alpha2: "GN", Name: "Guinea", Region: "AF-W", Center: Coordinates{Latitude: 9, Longitude: -9}},
	"GLP": {Alpha2: "GP", Name: "Guadeloupe", Region: "NA-E", Center: Coordinates{Latitude: 16, Longitude: -62}},
	"GMB": {Alpha2: "GM", Name: "Gambia", Region: "AF-W", Center: Coordinates{Latitude: 13, Longitude: -15}},
	"GNB": {Alpha2: "GW", Name: "Guinea-Bissau", Region: "AF-W", Center: Coordinates{Latitude: 11, Longitude: -15}},
	"GNQ": {Alpha2: "GQ", Name: "Equatorial Guinea", Region: "AF-C", Center: Coordinates{Latitude: 1, Longitude: 10}},
	"GRC": {Alpha2: "GR", Name: "Greece", Region: "EU-S", Center: Coordinates{Latitude: 39, Longitude: 21}},
	"GRD": {Alpha2: "GD", Name: "Grenada", Region: "NA-E", Center: Coordinates{Latitude: 12, Longitude: -61}},
	"GRL": {Alpha2: "GL", Name: "Greenland", Region: "NA-N", Center: Coordinates{Latitude: 71, Longitude: -42}},
	"GTM": {Alpha2: "GT", Name: "Guatemala", Region: "NA-S", Center: Coordinates{Latitude: 15, Longitude: -90}},
	"GUF": {Alpha2: "GF", Name: "French Guiana", Region: "SA", Center: Coordinates{Latitude: 3, Longitude: -53}},
	"GUM": {Alpha2: "GU", Name: "Guam", Region: "OC-N", Center: Coordinates{Latitude: 13, Longitude: 144}},
	"GUY": {Alpha2: "GY", Name: "Guyana", Region: "SA", Center: Coordinates{Latitude: 4, Longitude: -58}},
	"HKG": {Alpha2: "HK", Name: "Hong Kong", Region: "AS-E", Center: Coordinates{Latitude: 22, Longitude: 114}},
	"HMD": {Alpha2: "HM", Name: "Heard Island and McDonald Islands", Region: "OC-S", Center: Coordinates{Latitude: -53, Longitude: 73}},
	"HND": {Alpha2: "HN", Name: "Honduras", Region: "NA-S", Center: Coordinates{Latitude: 15, Longitude: -86}},
	"HRV": {Alpha2: "HR", Name: "Croatia", Region: "EU-S", Center: Coordinates{Latitude: 45, Longitude: 15}},
	"HTI": {Alpha2: "HT", Name: "Haiti", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -72}},
	"HUN": {Alpha2: "HU", Name: "Hungary", Region: "EU-E", Center: Coordinates{Latitude: 47, Longitude: 19}},
	"IDN": {Alpha2: "ID", Name: "Indonesia", Region: "AS-SE", Center: Coordinates{Latitude: 0, Longitude: 113}},
	"IMN": {Alpha2: "IM", Name: "Isle of Man", Region: "EU-N", Center: Coordinates{Latitude: 54, Longitude: -4}},
	"IND": {Alpha2: "IN", Name: "India", Region: "AS-S", Center: Coordinates{Latitude: 20, Longitude: 78}},
	"IOT": {Alpha2: "IO", Name: "British Indian Ocean Territory", Region: "AF-E", Center: Coordinates{Latitude: -6, Longitude: 71}},
	"IRL": {Alpha2: "IE", Name: "Ireland", Region: "EU-N", Center: Coordinates{Latitude: 53, Longitude: -8}},
	"IRN": {Alpha2: "IR", Name: "Iran", Region: "AS-S", Center: Coordinates{Latitude: 32, Longitude: 53}},
	"IRQ": {Alpha2: "IQ", Name: "Iraq", Region: "AS-W", Center: Coordinates{Latitude: 33, Longitude: 43}},
	"ISL": {Alpha2: "IS", Name: "Iceland", Region: "EU-N", Center: Coordinates{Latitude: 64, Longitude: -19}},
	"ISR": {Alpha2: "IL", Name: "Israel", Region: "AS-W", Center: Coordinates{Latitude: 31, Longitude: 34}},
	"ITA": {Alpha2: "IT", Name: "Italy", Region: "EU-S", Center: Coordinates{Latitude: 41, Longitude: 12}},
	"JAM": {Alpha2: "JM", Name: "Jamaica", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -77}},
	"JEY": {Alpha2: "JE", Name: "Jersey", Region: "EU-N", Center: Coordinates{Latitude: 49, Longitude: -2}},
	"JOR": {Alpha2: "JO", Name: "Jordan", Region: "AS-W", Center: Coordinates{Latitude: 30, Longitude: 36}},
	"JPN": {Alpha2: "JP", Name: "Japan", Region: "AS-E", Center: Coordinates{Latitude: 36, Longitude: 138}},
	"KAZ": {Alpha2: "KZ", Name: "Kazakhstan", Region: "AS-C", Center: Coordinates{Latitude: 48, Longitude: 66}},
	"KEN": {Alpha2: "KE", Name: "Kenya", Region: "AF-E", Center: Coordinates{Latitude: 0, Longitude: 37}},
	"KGZ": {Alpha2: "KG", Name: "Kyrgyzstan", Region: "AS-C", Center: Coordinates{Latitude: 41, Longitude: 74}},
	"KHM": {Alpha2: "KH", Name: "Cambodia", Region: "AS-SE", Center: Coordinates{Latitude: 12, Longitude: 104}},
	"KIR": {Alpha2: "KI", Name: "Kiribati", Region: "OC-N", Center: Coordinates{Latitude: -3, Longitude: -168}},
	"KNA": {Alpha2: "KN", Name: "Saint Kitts and Nevis", Region: "NA-E", Center: Coordinates{Latitude: 17, Longitude: -62}},
	"KOR": {Alpha2: "KR", Name: "South Korea", Region: "AS-E", Center: Coordinates{Latitude: 35, Longitude: 127}},
	"KWT": {Alpha2: "KW", Name: "Kuwait", Region: "AS-W", Center: Coordinates{Latitude: 29, Longitude: 47}},
	"LAO": {Alpha2: "LA", Name: "Lao", Region: "AS-SE", Center: Coordinates{Latitude: 19, Longitude: 102}},
	"LBN": {Alpha2: "LB", Name: "Lebanon", Region: "AS-W", Center: Coordinates{Latitude: 33, Longitude: 35}},
	"LBR": {Alpha2: "LR", Name: "Liberia", Region: "AF-W", Center: Coordinates{Latitude: 6, Longitude: -9}},
	"LBY": {Alpha2: "LY", Name: "Libya", Region: "AF-N", Center: Coordinates{Latitude: 26, Longitude: 17}},
	"LCA": {Alpha2: "LC", Name: "Saint Lucia", Region: "NA-E", Center: Coordinates{Latitude: 13, Longitude: -60}},
	"LIE": {Alpha2: "LI", Name: "Liechtenstein", Region: "EU-W", Center: Coordinates{Latitude: 47, Longitude: 9}},
	"LKA": {Alpha2: "LK", Name: "Sri Lanka", Region: "AS-S", Center: Coordinates{Latitude: 7, Longitude: 80}},
	"LSO": {Alpha2: "LS", Name: "Lesotho", Region: "AF-S", Center: Coordinates{Latitude: -29, Longitude: 28}},
	"LTU": {Alpha2: "LT", Name: "Lithuania", Region: "EU-N", Center: Coordinates{Latitude: 55, Longitude: 23}},
	"LUX": {Alpha2: "LU", Name: "Luxembourg", Region: "EU-W", Center: Coordinates{Latitude: 49, Longitude: 6}},
	"LVA": {Alpha2: "LV", Name: "Latvia", Region: "EU-N", Center: Coordinates{Latitude: 56, Longitude: 24}},
	"MAC": {Alpha2: "MO", Name: "Macao", Region: "AS-E", Center: Coordinates{Latitude: 22, Longitude: 113}},
	"MAF": {Alpha2: "MF", Name: "Saint Martin", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -63}},
	"MAR": {Alpha2: "MA", Name: "Morocco", Region: "AF-N", Center: Coordinates{Latitude: 31, Longitude: -7}},
	"MCO": {Alpha2: "MC", Name: "Monaco", Region: "EU-W", Center: Coordinates{Latitude: 43, Longitude: 7}},
	"MDA": {Alpha2: "MD", Name: "Moldova", Region: "EU-E", Center: Coordinates{Latitude: 47, Longitude: 28}},
	"MDG": {Alpha2: "MG", Name: "Madagascar", Region: "AF-E", Center: Coordinates{Latitude: -18, Longitude: 46}},
	"MDV": {Alpha2: "MV", Name: "Maldives", Region: "AS-S", Center: Coordinates{Latitude: 3, Longitude: 73}},
	"MEX": {Alpha2: "MX", Name: "Mexico", Region: "NA-S", Center: Coordinates{Latitude: 23, Longitude: -102}},
	"MHL": {Alpha2: "MH", Name: "Marshall Islands", Region: "OC-N", Center: Coordinates{Latitude: 7, Longitude: 171}},
	"MKD": {Alpha2: "MK", Name: "North Macedonia", Region: "EU-S", Center: Coordinates{Latitude: 41, Longitude: 21}},
	"MLI": {Alpha2: "ML", Name: "Mali", Region: "AF-W", Center: Coordinates{Latitude: 17, Longitude: -3}},
	"MLT": {Alpha2: "MT", Name: "Malta", Region: "EU-S", Center: Coordinates{Latitude: 35, Longitude: 14}},
	"MMR": {Alpha2: "MM", Name: "Myanmar", Region: "AS-SE", Center: Coordinates{Latitude: 21, Longitude: 95}},
	"MNE": {Alpha2: "ME", Name: "Montenegro", Region: "EU-S", Center: Coordinates{Latitude: 42, Longitude: 19}},
	"MNG": {Alpha2: "MN", Name: "Mongolia", Region: "AS-E", Center: Coordinates{Latitude: 46, Longitude: 103}},
	"MNP": {Alpha2: "MP", Name: "Northern Mariana Islands", Region: "OC-N", Center: Coordinates{Latitude: 17, Longitude: 145}},
	"MOZ": {Alpha2: "MZ", Name: "Mozambique", Region: "AF-E", Center: Coordinates{Latitude: -18, Longitude: 35}},
	"MRT": {Alpha2: "MR", Name: "Mauritania", Region: "AF-W", Center: Coordinates{Latitude: 21, Longitude: -10}},
	"MSR": {Alpha2: "MS", Name: "Montserrat", Region: "NA-E", Center: Coordinates{Latitude: 16, Longitude: -62}},
	"MTQ": {Alpha2: "MQ", Name: "Martinique", Region: "NA-E", Center: Coordinates{Latitude: 14, Longitude: -61}},
	"MUS": {Alpha2: "MU", Name: "Mauritius", Region: "AF-E", Center: Coordinates{Latitude: -20, Longitude: 57}},
	"MWI": {Alpha2: "MW", Name: "Malawi", Region: "AF-E", Center: Coordinates{Latitude: -13, Longitude: 34}},
	"MYS": {Alpha2: "MY", Name: "Malaysia", Region: "AS-SE", Center: Coordinates{Latitude: 4, Longitude: 101}},
	"MYT": {Alpha2: "YT", Name: "Mayotte", Region: "AF-E", Center: Coordinates{Latitude: -12, Longitude: 45}},
	"NAM": {Alpha2: "NA", Name: "Namibia", Region: "AF-S", Center: Coordinates{Latitude: -22, Longitude: 18}},
	"NCL": {Alpha2: "NC", Name: "New Caledonia", Region: "OC-C", Center: Coordinates{Latitude: -20, Longitude: 165}},
	"NER": {Alpha2: "NE", Name: "Niger", Region: "AF-W", Center: Coordinates{Latitude: 17, Longitude: 8}},
	"NFK": {Alpha2: "NF", Name: "Norfolk Island", Region: "OC-S", Center: Coordinates{Latitude: -29, Longitude: 167}},
	"NGA": {Alpha2: "NG", Name: "Nigeria", Region: "AF-W", Center: Coordinates{Latitude: 9, Longitude: 8}},
	"NIC": {Alpha2: "NI", Name: "Nicaragua", Region: "NA-S", Center: Coordinates{Latitude: 12, Longitude: -85}},
	"NIU": {Alpha2: "NU", Name: "Niue", Region: "OC-E", Center: Coordinates{Latitude: -19, Longitude: -169}},
	"NLD": {Alpha2: "NL", Name: "Netherlands", Region: "EU-W", Center: Coordinates{Latitude: 52, Longitude: 5}},
	"NOR": {Alpha2: "NO", Name: "Norway", Region: "EU-N", Center: Coordinates{Latitude: 60, Longitude: 8}},
	"NPL": {Alpha2: "NP", Name: "Nepal", Region: "AS-S", Center: Coordinates{Latitude: 28, Longitude: 84}},
	"NRU": {Alpha2: "NR", Name: "Nauru", Region: "OC-N", Center: Coordinates{Latitude: 0, Longitude: 166}},
	"NZL": {Alpha2: "NZ", Name: "New Zealand", Region: "OC-S", Center: Coordinates{Latitude: -40, Longitude: 174}},
	"OMN": {Alpha2: "OM", Name: "Oman", Region: "AS-W", Center: Coordinates{Latitude: 21, Longitude: 55}},
	"PAK": {Alpha2: "PK", Name: "Pakistan", Region: "AS-S", Center: Coordinates{Latitude: 30, Longitude: 69}},
	"PAN": {Alpha2: "PA", Name: "Panama", Region: "NA-S", Center: Coordinates{Latitude: 8, Longitude: -80}},
	"PCN": {Alpha2: "PN", Name: "Pitcairn", Region: "OC-E", Center: Coordinates{Latitude: -24, Longitude: -127}},
	"PER": {Alpha2: "PE", Name: "Peru", Region: "SA", Center: Coordinates{Latitude: -9, Longitude: -75}},
	"PHL": {Alpha2: "PH", Name: "Philippines", Region: "AS-SE", Center: Coordinates{Latitude: 12, Longitude: 121}},
	"PLW": {Alpha2: "PW", Name: "Palau", Region: "OC-N", Center: Coordinates{Latitude: 7, Longitude: 134}},
	"PNG": {Alpha2: "PG", Name: "Papua New Guinea", Region: "OC-C", Center: Coordinates{Latitude: -6, Longitude: 143}},
	"POL": {Alpha2: "PL", Name: "Poland", Region: "EU-E", Center: Coordinates{Latitude: 51, Longitude: 19}},
	"PRI": {Alpha2: "PR", Name: "Puerto Rico", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -66}},
	"PRK": {Alpha2: "KP", Name: "North Korea (DPRK)", Region: "AS-E", Center: Coordinates{Latitude: 40, Longitude: 127}},
	"PRT": {Alpha2: "PT", Name: "Portugal", Region: "EU-S", Center: Coordinates{Latitude: 39, Longitude: -8}},
	"PRY": {Alpha2: "PY", Name: "Paraguay", Region: "SA", Center: Coordinates{Latitude: -23, Longitude: -58}},
	"PSE": {Alpha2: "PS", Name: "Palestine", Region: "AS-W", Center: Coordinates{Latitude: 31, Longitude: 35}},
	"PYF": {Alpha2: "PF", Name: "French Polynesia", Region: "OC-E", Center: Coordinates{Latitude: -17, Longitude: -149}},
	"QAT": {Alpha2: "QA", Name: "Qatar", Region: "AS-W", Center: Coordinates{Latitude: 25, Longitude: 51}},
	"REU": {Alpha2: "RE", Name: "Réunion", Region: "AF-E", Center: Coordinates{Latitude: -21, Longitude: 55}},
	"ROU": {Alpha2: "RO", Name: "Romania", Region: "EU-E", Center: Coordinates{Latitude: 45, Longitude: 24}},
	"RUS": {Alpha2: "RU", Name: "Russian Federation", Region: "EU-E", Center: Coordinates{Latitude: 61, Longitude: 105}},
	"RWA": {Alpha2: "RW", Name: "Rwanda", Region: "AF-E", Center: Coordinates{Latitude: -1, Longitude: 29}},
	"SAU": {Alpha2: "SA", Name: "Saudi Arabia", Region: "AS-W", Center: Coordinates{Latitude: 23, Longitude: 45}},
	"SDN": {Alpha2: "SD", Name: "Sudan", Region: "AF-N", Center: Coordinates{Latitude: 12, Longitude: 30}},
	"SEN": {Alpha2: "SN", Name: "Senegal", Region: "AF-W", Center: Coordinates{Latitude: 14, Longitude: -14}},
	"SGP": {Alpha2: "SG", Name: "Singapore", Region: "AS-SE", Center: Coordinates{Latitude: 1, Longitude: 103}},
	"SGS": {Alpha2: "GS", Name: "South Georgia and the South Sandwich Islands", Region: "SA", Center: Coordinates{Latitude: -54, Longitude: -36}},
	"SHN": {Alpha2: "SH", Name: "Saint Helena", Region: "AF-W", Center: Coordinates{Latitude: -24, Longitude: -10}},
	"SJM": {Alpha2: "SJ", Name: "Svalbard and Jan Mayen", Region: "EU-N", Center: Coordinates{Latitude: 77, Longitude: 23}},
	"SLB": {Alpha2: "SB", Name: "Solomon Islands", Region: "OC-C", Center: Coordinates{Latitude: -9, Longitude: 160}},
	"SLE": {Alpha2: "SL", Name: "Sierra Leone", Region: "AF-W", Center: Coordinates{Latitude: 8, Longitude: -11}},
	"SLV": {Alpha2: "SV", Name: "El Salvador", Region: "NA-S", Center: Coordinates{Latitude: 13, Longitude: -88}},
	"SMR": {Alpha2: "SM", Name: "San Marino", Region: "EU-S", Center: Coordinates{Latitude: 43, Longitude: 12}},
	"SOM": {Alpha2: "SO", Name: "Somalia", Region: "AF-E", Center: Coordinates{Latitude: 5, Longitude: 46}},
	"SPM": {Alpha2: "PM", Name: "Saint Pierre and Miquelon", Region: "NA-N", Center: Coordinates{Latitude: 46, Longitude: -56}},
	"SRB": {Alpha2: "RS", Name: "Serbia", Region: "EU-S", Center: Coordinates{Latitude: 44, Longitude: 21}},
	"SSD": {Alpha2: "SS", Name: "South Sudan", Region: "AF-E", Center: Coordinates{Latitude: 4, Longitude: 31}},
	"STP": {Alpha2: "ST", Name: "Sao Tome and Principe", Region: "AF-C", Center: Coordinates{Latitude: 0, Longitude: 6}},
	"SUR": {Alpha2: "SR", Name: "Suriname", Region: "SA", Center: Coordinates{Latitude: 3, Longitude: -56}},
	"SVK": {Alpha2: "SK", Name: "Slovakia", Region: "EU-E", Center: Coordinates{Latitude: 48, Longitude: 19}},
	"SVN": {Alpha2: "SI", Name: "Slovenia", Region: "EU-S", Center: Coordinates{Latitude: 46, Longitude: 14}},
	"SWE": {Alpha2: "SE", Name: "Sweden", Region: "EU-N", Center: Coordinates{Latitude: 60, Longitude: 18}},
	"SWZ": {Alpha2: "SZ", Name: "Eswatini", Region: "AF-S", Center: Coordinates{Latitude: -26, Longitude: 31}},
	"SXM": {Alpha2: "SX", Name: "Sint Maarten", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -63}},
	"SYC": {Alpha2: "SC", Name: "Seychelles", Region: "AF-E", Center: Coordinates{Latitude: -4, Longitude: 55}},
	"SYR": {Alpha2: "SY", Name: "Syrian Arab Republic", Region: "AS-W", Center: Coordinates{Latitude: 34, Longitude: 38}},
	"TCA": {Alpha2: "TC", Name: "Turks and Caicos Islands", Region: "NA-E", Center: Coordinates{Latitude: 21, Longitude: -71}},
	"TCD": {Alpha2: "TD", Name: "Chad", Region: "AF-C", Center: Coordinates{Latitude: 15, Longitude: 18}},
	"TGO": {Alpha2: "TG", Name: "Togo", Region: "AF-W", Center: Coordinates{Latitude: 8, Longitude: 0}},
	"THA": {Alpha2: "TH", Name: "Thailand", Region: "AS-SE", Center: Coordinates{Latitude: 15, Longitude: 100}},
	"TJK": {Alpha2: "TJ", Name: "Tajikistan", Region: "AS-C", Center: Coordinates{Latitude: 38, Longitude: 71}},
	"TKL": {Alpha2: "TK", Name: "Tokelau", Region: "OC-E", Center: Coordinates{Latitude: -8, Longitude: -171}},
	"TKM": {Alpha2: "TM", Name: "Turkmenistan", Region: "AS-C", Center: Coordinates{Latitude: 38, Longitude: 59}},
	"TLS": {Alpha2: "TL", Name: "Timor-Leste", Region: "AS-SE", Center: Coordinates{Latitude: -8, Longitude: 125}},
	"TON": {Alpha2: "TO", Name: "Tonga", Region: "OC-E", Center: Coordinates{Latitude: -21, Longitude: -175}},
	"TTO": {Alpha2: "TT", Name: "Trinidad and Tobago", Region: "NA-E", Center: Coordinates{Latitude: 10, Longitude: -61}},
	"TUN": {Alpha2: "TN", Name: "Tunisia", Region: "AF-N", Center: Coordinates{Latitude: 33, Longitude: 9}},
	"TUR": {Alpha2: "TR", Name: "Turkey", Region: "AS-W", Center: Coordinates{Latitude: 38, Longitude: 35}},
	"TUV": {Alpha2: "TV", Name: "Tuvalu", Region: "OC-E", Center: Coordinates{Latitude: -7, Longitude: 177}},
	"TWN": {Alpha2: "TW", Name: "Taiwan", Region: "AS-E", Center: Coordinates{Latitude: 23, Longitude: 120}},
	"TZA": {Alpha2: "TZ", Name: "Tanzania", Region: "AF-E", Center: Coordinates{Latitude: -6, Longitude: 34}},
	"UGA": {Alpha2: "UG", Name: "Uganda", Region: "AF-E", Center: Coordinates{Latitude: 1, Longitude: 32}},
	"UKR": {Alpha2: "UA", Name: "Ukraine", Region: "EU-E", Center: Coordinates{Latitude: 48, Longitude: 31}},
	"URY": {Alpha2: "UY", Name: "Uruguay", Region: "SA", Center: Coordinates{Latitude: -32, Longitude: -55}},
	"USA": {Alpha2: "US", Name: "United States of America", Region: "NA-N", Center: Coordinates{Latitude: 37, Longitude: -95}},
	"UZB": {Alpha2: "UZ", Name: "Uzbekistan", Region: "AS-C", Center: Coordinates{Latitude: 41, Longitude: 64}},
	"VAT": {Alpha2: "VA", Name: "Holy See", Region: "EU-S", Center: Coordinates{Latitude: 41, Longitude: 12}},
	"VCT": {Alpha2: "VC", Name: "Saint Vincent and the Grenadines", Region: "NA-E", Center: Coordinates{Latitude: 12, Longitude: -61}},
	"VEN": {Alpha2: "VE", Name: "Venezuela", Region: "SA", Center: Coordinates{Latitude: 6, Longitude: -66}},
	"VGB": {Alpha2: "VG", Name: "Virgin Islands (British)", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -64}},
	"VIR": {Alpha2: "VI", Name: "Virgin Islands (U.S.)", Region: "NA-E", Center: Coordinates{Latitude: 18, Longitude: -64}},
	"VNM": {Alpha2: "VN", Name: "Viet Nam", Region: "AS-SE", Center: Coordinates{Latitude: 14, Longitude: 108}},
	"VUT": {Alpha2: "VU", Name: "Vanuatu", Region: "OC-C", Center: Coordinates{Latitude: -15, Longitude: 166}},
	"WLF": {Alpha2: "WF", Name: "Wallis and Futuna", Region: "OC-E", Center: Coordinates{Latitude: -13, Longitude: -177}},
	"WSM": {Alpha2: "WS", Name: "Samoa", Region: "OC-E", Center: Coordinates{Latitude: -13, Longitude: -172}},
	"XKX": {Alpha2: "XK", Name: "Kosovo", Region: "EU-E", Center: Coordinates{Latitude: 42, Longitude: 20}},
	"YEM": {Alpha2: "YE", Name: "Yemen", Region: "AS-W", Center: Coordinates{Latitude: 15, Longitude: 48}},
	"ZAF": {Alpha2: "ZA", Name: "South Africa", Region: "AF-S", Center: Coordinates{Latitude: -30, Longitude: 22}},
	"ZMB": {Alpha2: "ZM", Name: "Zambia", Region: "AF-E", Center: Coordinates{Latitude: -13, Longitude: 27}},
	"ZWE": {Alpha2: "ZW", Name: "Zimbabwe", Region: "AF-E", Center: Coordinates{Latitude: -19, Longitude: 29}},
}
