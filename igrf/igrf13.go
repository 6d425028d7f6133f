package igrf

// Degree-1 rows of igrf13coeffs.txt (IAGA Working Group V-MOD, December 2019
// release). Identical to IGRF-14 for 1900.0-2015.0; kept so results computed
// against the previous generation stay reproducible.
var igrf13Epochs = []Coefficients{
	{G10: -31543, G11: -2298, H11: 5922},          // 1900.0
	{G10: -31464, G11: -2298, H11: 5909},          // 1905.0
	{G10: -31354, G11: -2297, H11: 5898},          // 1910.0
	{G10: -31212, G11: -2306, H11: 5875},          // 1915.0
	{G10: -31060, G11: -2317, H11: 5845},          // 1920.0
	{G10: -30926, G11: -2318, H11: 5817},          // 1925.0
	{G10: -30805, G11: -2316, H11: 5808},          // 1930.0
	{G10: -30715, G11: -2306, H11: 5812},          // 1935.0
	{G10: -30654, G11: -2292, H11: 5821},          // 1940.0
	{G10: -30594, G11: -2285, H11: 5810},          // 1945.0
	{G10: -30554, G11: -2250, H11: 5815},          // 1950.0
	{G10: -30500, G11: -2215, H11: 5820},          // 1955.0
	{G10: -30421, G11: -2169, H11: 5791},          // 1960.0
	{G10: -30334, G11: -2119, H11: 5776},          // 1965.0
	{G10: -30220, G11: -2068, H11: 5737},          // 1970.0
	{G10: -30100, G11: -2013, H11: 5675},          // 1975.0
	{G10: -29992, G11: -1956, H11: 5604},          // 1980.0
	{G10: -29873, G11: -1905, H11: 5500},          // 1985.0
	{G10: -29775, G11: -1848, H11: 5406},          // 1990.0
	{G10: -29692, G11: -1784, H11: 5306},          // 1995.0
	{G10: -29619.4, G11: -1728.2, H11: 5186.1},    // 2000.0
	{G10: -29554.63, G11: -1669.05, H11: 5077.99}, // 2005.0
	{G10: -29496.57, G11: -1586.42, H11: 4944.26}, // 2010.0
	{G10: -29441.46, G11: -1501.77, H11: 4795.99}, // 2015.0
	{G10: -29404.8, G11: -1450.9, H11: 4652.5},    // 2020.0
}

var igrf13SV = Coefficients{G10: 5.7, G11: 7.4, H11: -25.9} // 2020-2025
