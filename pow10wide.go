package decimalfloat

// pow10Entry is the power-of-ten table entry of spec.md §3: the best
// rounded 64-bit normalized mantissa (top bit set) approximating 10^k,
// and the binary exponent such that 10^k ~= mant * 2^exp2.
//
// Grounded on remyoudompheng-go/src/strconv/extfloat64.go's
// ryuPowersOfTen/ryuInvPowersOfTen table shape (verified to agree with
// this table at the entries that overlap, e.g. 10^1, 10^22, 10^-1) and
// the naming used by Peirceman-windlang__eiseLemireTable.go. Per
// SPEC_FULL.md §12 (Open Question a), this module uses a dense table —
// one entry per decimal exponent — rather than a strided table with a
// separate small-multiplier correction.
type pow10Entry struct {
	mant uint64
	exp2 int32
}

// pow10WideMinExp and pow10WideMaxExp bound the decimal exponents
// covered by pow10Wide. A decimal exponent outside this range is, per
// spec.md §4.3, certainly an overflow (exponent too large and positive)
// or underflow (exponent too large and negative) for either binary32 or
// binary64, and is resolved to ±∞/±0 without consulting this table or
// the slow path.
const (
	pow10WideMinExp = -380
	pow10WideMaxExp = 380
)

// pow10Wide[k - pow10WideMinExp] approximates 10^k.
var pow10Wide = [...]pow10Entry{
	{0xcb47a9358c317faf, -1326}, // 10^-380
	{0xfe199382ef3ddf9b, -1323}, // 10^-379
	{0x9ecffc31d586abc1, -1319}, // 10^-378
	{0xc683fb3e4ae856b1, -1316}, // 10^-377
	{0xf824fa0ddda26c5d, -1313}, // 10^-376
	{0x9b171c48aa8583ba, -1309}, // 10^-375
	{0xc1dce35ad526e4a9, -1306}, // 10^-374
	{0xf2541c318a709dd3, -1303}, // 10^-373
	{0x9774919ef68662a4, -1299}, // 10^-372
	{0xbd51b606b427fb4d, -1296}, // 10^-371
	{0xeca623886131fa20, -1293}, // 10^-370
	{0x93e7d6353cbf3c54, -1289}, // 10^-369
	{0xb8e1cbc28bef0b69, -1286}, // 10^-368
	{0xe71a3eb32eeace43, -1283}, // 10^-367
	{0x9070672ffd52c0ea, -1279}, // 10^-366
	{0xb48c80fbfca77124, -1276}, // 10^-365
	{0xe1afa13afbd14d6e, -1273}, // 10^-364
	{0x8d0dc4c4dd62d064, -1269}, // 10^-363
	{0xb05135f614bb847e, -1266}, // 10^-362
	{0xdc65837399ea659d, -1263}, // 10^-361
	{0x89bf722840327f82, -1259}, // 10^-360
	{0xac2f4eb2503f1f63, -1256}, // 10^-359
	{0xd73b225ee44ee73b, -1253}, // 10^-358
	{0x8684f57b4eb15085, -1249}, // 10^-357
	{0xa82632da225da4a6, -1246}, // 10^-356
	{0xd22fbf90aaf50dd0, -1243}, // 10^-355
	{0x835dd7ba6ad928a2, -1239}, // 10^-354
	{0xa4354da9058f72ca, -1236}, // 10^-353
	{0xcd42a11346f34f7d, -1233}, // 10^-352
	{0x8049a4ac0c5811ae, -1229}, // 10^-351
	{0xa05c0dd70f6e161a, -1226}, // 10^-350
	{0xc873114cd3499ba0, -1223}, // 10^-349
	{0xfa8fd5a0081c0288, -1220}, // 10^-348
	{0x9c99e58405118195, -1216}, // 10^-347
	{0xc3c05ee50655e1fa, -1213}, // 10^-346
	{0xf4b0769e47eb5a79, -1210}, // 10^-345
	{0x98ee4a22ecf3188c, -1206}, // 10^-344
	{0xbf29dcaba82fdeae, -1203}, // 10^-343
	{0xeef453d6923bd65a, -1200}, // 10^-342
	{0x9558b4661b6565f8, -1196}, // 10^-341
	{0xbaaee17fa23ebf76, -1193}, // 10^-340
	{0xe95a99df8ace6f54, -1190}, // 10^-339
	{0x91d8a02bb6c10594, -1186}, // 10^-338
	{0xb64ec836a47146fa, -1183}, // 10^-337
	{0xe3e27a444d8d98b8, -1180}, // 10^-336
	{0x8e6d8c6ab0787f73, -1176}, // 10^-335
	{0xb208ef855c969f50, -1173}, // 10^-334
	{0xde8b2b66b3bc4724, -1170}, // 10^-333
	{0x8b16fb203055ac76, -1166}, // 10^-332
	{0xaddcb9e83c6b1794, -1163}, // 10^-331
	{0xd953e8624b85dd79, -1160}, // 10^-330
	{0x87d4713d6f33aa6c, -1156}, // 10^-329
	{0xa9c98d8ccb009506, -1153}, // 10^-328
	{0xd43bf0effdc0ba48, -1150}, // 10^-327
	{0x84a57695fe98746d, -1146}, // 10^-326
	{0xa5ced43b7e3e9188, -1143}, // 10^-325
	{0xcf42894a5dce35ea, -1140}, // 10^-324
	{0x818995ce7aa0e1b2, -1136}, // 10^-323
	{0xa1ebfb4219491a1f, -1133}, // 10^-322
	{0xca66fa129f9b60a7, -1130}, // 10^-321
	{0xfd00b897478238d1, -1127}, // 10^-320
	{0x9e20735e8cb16382, -1123}, // 10^-319
	{0xc5a890362fddbc63, -1120}, // 10^-318
	{0xf712b443bbd52b7c, -1117}, // 10^-317
	{0x9a6bb0aa55653b2d, -1113}, // 10^-316
	{0xc1069cd4eabe89f9, -1110}, // 10^-315
	{0xf148440a256e2c77, -1107}, // 10^-314
	{0x96cd2a865764dbca, -1103}, // 10^-313
	{0xbc807527ed3e12bd, -1100}, // 10^-312
	{0xeba09271e88d976c, -1097}, // 10^-311
	{0x93445b8731587ea3, -1093}, // 10^-310
	{0xb8157268fdae9e4c, -1090}, // 10^-309
	{0xe61acf033d1a45df, -1087}, // 10^-308
	{0x8fd0c16206306bac, -1083}, // 10^-307
	{0xb3c4f1ba87bc8697, -1080}, // 10^-306
	{0xe0b62e2929aba83c, -1077}, // 10^-305
	{0x8c71dcd9ba0b4926, -1073}, // 10^-304
	{0xaf8e5410288e1b6f, -1070}, // 10^-303
	{0xdb71e91432b1a24b, -1067}, // 10^-302
	{0x892731ac9faf056f, -1063}, // 10^-301
	{0xab70fe17c79ac6ca, -1060}, // 10^-300
	{0xd64d3d9db981787d, -1057}, // 10^-299
	{0x85f0468293f0eb4e, -1053}, // 10^-298
	{0xa76c582338ed2622, -1050}, // 10^-297
	{0xd1476e2c07286faa, -1047}, // 10^-296
	{0x82cca4db847945ca, -1043}, // 10^-295
	{0xa37fce126597973d, -1040}, // 10^-294
	{0xcc5fc196fefd7d0c, -1037}, // 10^-293
	{0xff77b1fcbebcdc4f, -1034}, // 10^-292
	{0x9faacf3df73609b1, -1030}, // 10^-291
	{0xc795830d75038c1e, -1027}, // 10^-290
	{0xf97ae3d0d2446f25, -1024}, // 10^-289
	{0x9becce62836ac577, -1020}, // 10^-288
	{0xc2e801fb244576d5, -1017}, // 10^-287
	{0xf3a20279ed56d48a, -1014}, // 10^-286
	{0x9845418c345644d7, -1010}, // 10^-285
	{0xbe5691ef416bd60c, -1007}, // 10^-284
	{0xedec366b11c6cb8f, -1004}, // 10^-283
	{0x94b3a202eb1c3f39, -1000}, // 10^-282
	{0xb9e08a83a5e34f08, -997}, // 10^-281
	{0xe858ad248f5c22ca, -994}, // 10^-280
	{0x91376c36d99995be, -990}, // 10^-279
	{0xb58547448ffffb2e, -987}, // 10^-278
	{0xe2e69915b3fff9f9, -984}, // 10^-277
	{0x8dd01fad907ffc3c, -980}, // 10^-276
	{0xb1442798f49ffb4b, -977}, // 10^-275
	{0xdd95317f31c7fa1d, -974}, // 10^-274
	{0x8a7d3eef7f1cfc52, -970}, // 10^-273
	{0xad1c8eab5ee43b67, -967}, // 10^-272
	{0xd863b256369d4a41, -964}, // 10^-271
	{0x873e4f75e2224e68, -960}, // 10^-270
	{0xa90de3535aaae202, -957}, // 10^-269
	{0xd3515c2831559a83, -954}, // 10^-268
	{0x8412d9991ed58092, -950}, // 10^-267
	{0xa5178fff668ae0b6, -947}, // 10^-266
	{0xce5d73ff402d98e4, -944}, // 10^-265
	{0x80fa687f881c7f8e, -940}, // 10^-264
	{0xa139029f6a239f72, -937}, // 10^-263
	{0xc987434744ac874f, -934}, // 10^-262
	{0xfbe9141915d7a922, -931}, // 10^-261
	{0x9d71ac8fada6c9b5, -927}, // 10^-260
	{0xc4ce17b399107c23, -924}, // 10^-259
	{0xf6019da07f549b2b, -921}, // 10^-258
	{0x99c102844f94e0fb, -917}, // 10^-257
	{0xc0314325637a193a, -914}, // 10^-256
	{0xf03d93eebc589f88, -911}, // 10^-255
	{0x96267c7535b763b5, -907}, // 10^-254
	{0xbbb01b9283253ca3, -904}, // 10^-253
	{0xea9c227723ee8bcb, -901}, // 10^-252
	{0x92a1958a7675175f, -897}, // 10^-251
	{0xb749faed14125d37, -894}, // 10^-250
	{0xe51c79a85916f485, -891}, // 10^-249
	{0x8f31cc0937ae58d3, -887}, // 10^-248
	{0xb2fe3f0b8599ef08, -884}, // 10^-247
	{0xdfbdcece67006ac9, -881}, // 10^-246
	{0x8bd6a141006042be, -877}, // 10^-245
	{0xaecc49914078536d, -874}, // 10^-244
	{0xda7f5bf590966849, -871}, // 10^-243
	{0x888f99797a5e012d, -867}, // 10^-242
	{0xaab37fd7d8f58179, -864}, // 10^-241
	{0xd5605fcdcf32e1d7, -861}, // 10^-240
	{0x855c3be0a17fcd26, -857}, // 10^-239
	{0xa6b34ad8c9dfc070, -854}, // 10^-238
	{0xd0601d8efc57b08c, -851}, // 10^-237
	{0x823c12795db6ce57, -847}, // 10^-236
	{0xa2cb1717b52481ed, -844}, // 10^-235
	{0xcb7ddcdda26da269, -841}, // 10^-234
	{0xfe5d54150b090b03, -838}, // 10^-233
	{0x9efa548d26e5a6e2, -834}, // 10^-232
	{0xc6b8e9b0709f109a, -831}, // 10^-231
	{0xf867241c8cc6d4c1, -828}, // 10^-230
	{0x9b407691d7fc44f8, -824}, // 10^-229
	{0xc21094364dfb5637, -821}, // 10^-228
	{0xf294b943e17a2bc4, -818}, // 10^-227
	{0x979cf3ca6cec5b5b, -814}, // 10^-226
	{0xbd8430bd08277231, -811}, // 10^-225
	{0xece53cec4a314ebe, -808}, // 10^-224
	{0x940f4613ae5ed137, -804}, // 10^-223
	{0xb913179899f68584, -801}, // 10^-222
	{0xe757dd7ec07426e5, -798}, // 10^-221
	{0x9096ea6f3848984f, -794}, // 10^-220
	{0xb4bca50b065abe63, -791}, // 10^-219
	{0xe1ebce4dc7f16dfc, -788}, // 10^-218
	{0x8d3360f09cf6e4bd, -784}, // 10^-217
	{0xb080392cc4349ded, -781}, // 10^-216
	{0xdca04777f541c568, -778}, // 10^-215
	{0x89e42caaf9491b61, -774}, // 10^-214
	{0xac5d37d5b79b6239, -771}, // 10^-213
	{0xd77485cb25823ac7, -768}, // 10^-212
	{0x86a8d39ef77164bd, -764}, // 10^-211
	{0xa8530886b54dbdec, -761}, // 10^-210
	{0xd267caa862a12d67, -758}, // 10^-209
	{0x8380dea93da4bc60, -754}, // 10^-208
	{0xa46116538d0deb78, -751}, // 10^-207
	{0xcd795be870516656, -748}, // 10^-206
	{0x806bd9714632dff6, -744}, // 10^-205
	{0xa086cfcd97bf97f4, -741}, // 10^-204
	{0xc8a883c0fdaf7df0, -738}, // 10^-203
	{0xfad2a4b13d1b5d6c, -735}, // 10^-202
	{0x9cc3a6eec6311a64, -731}, // 10^-201
	{0xc3f490aa77bd60fd, -728}, // 10^-200
	{0xf4f1b4d515acb93c, -725}, // 10^-199
	{0x991711052d8bf3c5, -721}, // 10^-198
	{0xbf5cd54678eef0b7, -718}, // 10^-197
	{0xef340a98172aace5, -715}, // 10^-196
	{0x9580869f0e7aac0f, -711}, // 10^-195
	{0xbae0a846d2195713, -708}, // 10^-194
	{0xe998d258869facd7, -705}, // 10^-193
	{0x91ff83775423cc06, -701}, // 10^-192
	{0xb67f6455292cbf08, -698}, // 10^-191
	{0xe41f3d6a7377eeca, -695}, // 10^-190
	{0x8e938662882af53e, -691}, // 10^-189
	{0xb23867fb2a35b28e, -688}, // 10^-188
	{0xdec681f9f4c31f31, -685}, // 10^-187
	{0x8b3c113c38f9f37f, -681}, // 10^-186
	{0xae0b158b4738705f, -678}, // 10^-185
	{0xd98ddaee19068c76, -675}, // 10^-184
	{0x87f8a8d4cfa417ca, -671}, // 10^-183
	{0xa9f6d30a038d1dbc, -668}, // 10^-182
	{0xd47487cc8470652b, -665}, // 10^-181
	{0x84c8d4dfd2c63f3b, -661}, // 10^-180
	{0xa5fb0a17c777cf0a, -658}, // 10^-179
	{0xcf79cc9db955c2cc, -655}, // 10^-178
	{0x81ac1fe293d599c0, -651}, // 10^-177
	{0xa21727db38cb0030, -648}, // 10^-176
	{0xca9cf1d206fdc03c, -645}, // 10^-175
	{0xfd442e4688bd304b, -642}, // 10^-174
	{0x9e4a9cec15763e2f, -638}, // 10^-173
	{0xc5dd44271ad3cdba, -635}, // 10^-172
	{0xf7549530e188c129, -632}, // 10^-171
	{0x9a94dd3e8cf578ba, -628}, // 10^-170
	{0xc13a148e3032d6e8, -625}, // 10^-169
	{0xf18899b1bc3f8ca2, -622}, // 10^-168
	{0x96f5600f15a7b7e5, -618}, // 10^-167
	{0xbcb2b812db11a5de, -615}, // 10^-166
	{0xebdf661791d60f56, -612}, // 10^-165
	{0x936b9fcebb25c996, -608}, // 10^-164
	{0xb84687c269ef3bfb, -605}, // 10^-163
	{0xe65829b3046b0afa, -602}, // 10^-162
	{0x8ff71a0fe2c2e6dc, -598}, // 10^-161
	{0xb3f4e093db73a093, -595}, // 10^-160
	{0xe0f218b8d25088b8, -592}, // 10^-159
	{0x8c974f7383725573, -588}, // 10^-158
	{0xafbd2350644eead0, -585}, // 10^-157
	{0xdbac6c247d62a584, -582}, // 10^-156
	{0x894bc396ce5da772, -578}, // 10^-155
	{0xab9eb47c81f5114f, -575}, // 10^-154
	{0xd686619ba27255a3, -572}, // 10^-153
	{0x8613fd0145877586, -568}, // 10^-152
	{0xa798fc4196e952e7, -565}, // 10^-151
	{0xd17f3b51fca3a7a1, -562}, // 10^-150
	{0x82ef85133de648c5, -558}, // 10^-149
	{0xa3ab66580d5fdaf6, -555}, // 10^-148
	{0xcc963fee10b7d1b3, -552}, // 10^-147
	{0xffbbcfe994e5c620, -549}, // 10^-146
	{0x9fd561f1fd0f9bd4, -545}, // 10^-145
	{0xc7caba6e7c5382c9, -542}, // 10^-144
	{0xf9bd690a1b68637b, -539}, // 10^-143
	{0x9c1661a651213e2d, -535}, // 10^-142
	{0xc31bfa0fe5698db8, -532}, // 10^-141
	{0xf3e2f893dec3f126, -529}, // 10^-140
	{0x986ddb5c6b3a76b8, -525}, // 10^-139
	{0xbe89523386091466, -522}, // 10^-138
	{0xee2ba6c0678b597f, -519}, // 10^-137
	{0x94db483840b717f0, -515}, // 10^-136
	{0xba121a4650e4ddec, -512}, // 10^-135
	{0xe896a0d7e51e1566, -509}, // 10^-134
	{0x915e2486ef32cd60, -505}, // 10^-133
	{0xb5b5ada8aaff80b8, -502}, // 10^-132
	{0xe3231912d5bf60e6, -499}, // 10^-131
	{0x8df5efabc5979c90, -495}, // 10^-130
	{0xb1736b96b6fd83b4, -492}, // 10^-129
	{0xddd0467c64bce4a1, -489}, // 10^-128
	{0x8aa22c0dbef60ee4, -485}, // 10^-127
	{0xad4ab7112eb3929e, -482}, // 10^-126
	{0xd89d64d57a607745, -479}, // 10^-125
	{0x87625f056c7c4a8b, -475}, // 10^-124
	{0xa93af6c6c79b5d2e, -472}, // 10^-123
	{0xd389b47879823479, -469}, // 10^-122
	{0x843610cb4bf160cc, -465}, // 10^-121
	{0xa54394fe1eedb8ff, -462}, // 10^-120
	{0xce947a3da6a9273e, -459}, // 10^-119
	{0x811ccc668829b887, -455}, // 10^-118
	{0xa163ff802a3426a9, -452}, // 10^-117
	{0xc9bcff6034c13053, -449}, // 10^-116
	{0xfc2c3f3841f17c68, -446}, // 10^-115
	{0x9d9ba7832936edc1, -442}, // 10^-114
	{0xc5029163f384a931, -439}, // 10^-113
	{0xf64335bcf065d37d, -436}, // 10^-112
	{0x99ea0196163fa42e, -432}, // 10^-111
	{0xc06481fb9bcf8d3a, -429}, // 10^-110
	{0xf07da27a82c37088, -426}, // 10^-109
	{0x964e858c91ba2655, -422}, // 10^-108
	{0xbbe226efb628afeb, -419}, // 10^-107
	{0xeadab0aba3b2dbe5, -416}, // 10^-106
	{0x92c8ae6b464fc96f, -412}, // 10^-105
	{0xb77ada0617e3bbcb, -409}, // 10^-104
	{0xe55990879ddcaabe, -406}, // 10^-103
	{0x8f57fa54c2a9eab7, -402}, // 10^-102
	{0xb32df8e9f3546564, -399}, // 10^-101
	{0xdff9772470297ebd, -396}, // 10^-100
	{0x8bfbea76c619ef36, -392}, // 10^-99
	{0xaefae51477a06b04, -389}, // 10^-98
	{0xdab99e59958885c5, -386}, // 10^-97
	{0x88b402f7fd75539b, -382}, // 10^-96
	{0xaae103b5fcd2a882, -379}, // 10^-95
	{0xd59944a37c0752a2, -376}, // 10^-94
	{0x857fcae62d8493a5, -372}, // 10^-93
	{0xa6dfbd9fb8e5b88f, -369}, // 10^-92
	{0xd097ad07a71f26b2, -366}, // 10^-91
	{0x825ecc24c8737830, -362}, // 10^-90
	{0xa2f67f2dfa90563b, -359}, // 10^-89
	{0xcbb41ef979346bca, -356}, // 10^-88
	{0xfea126b7d78186bd, -353}, // 10^-87
	{0x9f24b832e6b0f436, -349}, // 10^-86
	{0xc6ede63fa05d3144, -346}, // 10^-85
	{0xf8a95fcf88747d94, -343}, // 10^-84
	{0x9b69dbe1b548ce7d, -339}, // 10^-83
	{0xc24452da229b021c, -336}, // 10^-82
	{0xf2d56790ab41c2a3, -333}, // 10^-81
	{0x97c560ba6b0919a6, -329}, // 10^-80
	{0xbdb6b8e905cb600f, -326}, // 10^-79
	{0xed246723473e3813, -323}, // 10^-78
	{0x9436c0760c86e30c, -319}, // 10^-77
	{0xb94470938fa89bcf, -316}, // 10^-76
	{0xe7958cb87392c2c3, -313}, // 10^-75
	{0x90bd77f3483bb9ba, -309}, // 10^-74
	{0xb4ecd5f01a4aa828, -306}, // 10^-73
	{0xe2280b6c20dd5232, -303}, // 10^-72
	{0x8d590723948a535f, -299}, // 10^-71
	{0xb0af48ec79ace837, -296}, // 10^-70
	{0xdcdb1b2798182245, -293}, // 10^-69
	{0x8a08f0f8bf0f156b, -289}, // 10^-68
	{0xac8b2d36eed2dac6, -286}, // 10^-67
	{0xd7adf884aa879177, -283}, // 10^-66
	{0x86ccbb52ea94baeb, -279}, // 10^-65
	{0xa87fea27a539e9a5, -276}, // 10^-64
	{0xd29fe4b18e88640f, -273}, // 10^-63
	{0x83a3eeeef9153e89, -269}, // 10^-62
	{0xa48ceaaab75a8e2b, -266}, // 10^-61
	{0xcdb02555653131b6, -263}, // 10^-60
	{0x808e17555f3ebf12, -259}, // 10^-59
	{0xa0b19d2ab70e6ed6, -256}, // 10^-58
	{0xc8de047564d20a8c, -253}, // 10^-57
	{0xfb158592be068d2f, -250}, // 10^-56
	{0x9ced737bb6c4183d, -246}, // 10^-55
	{0xc428d05aa4751e4d, -243}, // 10^-54
	{0xf53304714d9265e0, -240}, // 10^-53
	{0x993fe2c6d07b7fac, -236}, // 10^-52
	{0xbf8fdb78849a5f97, -233}, // 10^-51
	{0xef73d256a5c0f77d, -230}, // 10^-50
	{0x95a8637627989aae, -226}, // 10^-49
	{0xbb127c53b17ec159, -223}, // 10^-48
	{0xe9d71b689dde71b0, -220}, // 10^-47
	{0x9226712162ab070e, -216}, // 10^-46
	{0xb6b00d69bb55c8d1, -213}, // 10^-45
	{0xe45c10c42a2b3b06, -210}, // 10^-44
	{0x8eb98a7a9a5b04e3, -206}, // 10^-43
	{0xb267ed1940f1c61c, -203}, // 10^-42
	{0xdf01e85f912e37a3, -200}, // 10^-41
	{0x8b61313bbabce2c6, -196}, // 10^-40
	{0xae397d8aa96c1b78, -193}, // 10^-39
	{0xd9c7dced53c72256, -190}, // 10^-38
	{0x881cea14545c7575, -186}, // 10^-37
	{0xaa242499697392d3, -183}, // 10^-36
	{0xd4ad2dbfc3d07788, -180}, // 10^-35
	{0x84ec3c97da624ab5, -176}, // 10^-34
	{0xa6274bbdd0fadd62, -173}, // 10^-33
	{0xcfb11ead453994ba, -170}, // 10^-32
	{0x81ceb32c4b43fcf5, -166}, // 10^-31
	{0xa2425ff75e14fc32, -163}, // 10^-30
	{0xcad2f7f5359a3b3e, -160}, // 10^-29
	{0xfd87b5f28300ca0e, -157}, // 10^-28
	{0x9e74d1b791e07e48, -153}, // 10^-27
	{0xc612062576589ddb, -150}, // 10^-26
	{0xf79687aed3eec551, -147}, // 10^-25
	{0x9abe14cd44753b53, -143}, // 10^-24
	{0xc16d9a0095928a27, -140}, // 10^-23
	{0xf1c90080baf72cb1, -137}, // 10^-22
	{0x971da05074da7bef, -133}, // 10^-21
	{0xbce5086492111aeb, -130}, // 10^-20
	{0xec1e4a7db69561a5, -127}, // 10^-19
	{0x9392ee8e921d5d07, -123}, // 10^-18
	{0xb877aa3236a4b449, -120}, // 10^-17
	{0xe69594bec44de15b, -117}, // 10^-16
	{0x901d7cf73ab0acd9, -113}, // 10^-15
	{0xb424dc35095cd80f, -110}, // 10^-14
	{0xe12e13424bb40e13, -107}, // 10^-13
	{0x8cbccc096f5088cc, -103}, // 10^-12
	{0xafebff0bcb24aaff, -100}, // 10^-11
	{0xdbe6fecebdedd5bf, -97}, // 10^-10
	{0x89705f4136b4a597, -93}, // 10^-9
	{0xabcc77118461cefd, -90}, // 10^-8
	{0xd6bf94d5e57a42bc, -87}, // 10^-7
	{0x8637bd05af6c69b6, -83}, // 10^-6
	{0xa7c5ac471b478423, -80}, // 10^-5
	{0xd1b71758e219652c, -77}, // 10^-4
	{0x83126e978d4fdf3b, -73}, // 10^-3
	{0xa3d70a3d70a3d70a, -70}, // 10^-2
	{0xcccccccccccccccd, -67}, // 10^-1
	{0x8000000000000000, -63}, // 10^0
	{0xa000000000000000, -60}, // 10^1
	{0xc800000000000000, -57}, // 10^2
	{0xfa00000000000000, -54}, // 10^3
	{0x9c40000000000000, -50}, // 10^4
	{0xc350000000000000, -47}, // 10^5
	{0xf424000000000000, -44}, // 10^6
	{0x9896800000000000, -40}, // 10^7
	{0xbebc200000000000, -37}, // 10^8
	{0xee6b280000000000, -34}, // 10^9
	{0x9502f90000000000, -30}, // 10^10
	{0xba43b74000000000, -27}, // 10^11
	{0xe8d4a51000000000, -24}, // 10^12
	{0x9184e72a00000000, -20}, // 10^13
	{0xb5e620f480000000, -17}, // 10^14
	{0xe35fa931a0000000, -14}, // 10^15
	{0x8e1bc9bf04000000, -10}, // 10^16
	{0xb1a2bc2ec5000000, -7}, // 10^17
	{0xde0b6b3a76400000, -4}, // 10^18
	{0x8ac7230489e80000, 0}, // 10^19
	{0xad78ebc5ac620000, 3}, // 10^20
	{0xd8d726b7177a8000, 6}, // 10^21
	{0x878678326eac9000, 10}, // 10^22
	{0xa968163f0a57b400, 13}, // 10^23
	{0xd3c21bcecceda100, 16}, // 10^24
	{0x84595161401484a0, 20}, // 10^25
	{0xa56fa5b99019a5c8, 23}, // 10^26
	{0xcecb8f27f4200f3a, 26}, // 10^27
	{0x813f3978f8940984, 30}, // 10^28
	{0xa18f07d736b90be5, 33}, // 10^29
	{0xc9f2c9cd04674edf, 36}, // 10^30
	{0xfc6f7c4045812296, 39}, // 10^31
	{0x9dc5ada82b70b59e, 43}, // 10^32
	{0xc5371912364ce305, 46}, // 10^33
	{0xf684df56c3e01bc7, 49}, // 10^34
	{0x9a130b963a6c115c, 53}, // 10^35
	{0xc097ce7bc90715b3, 56}, // 10^36
	{0xf0bdc21abb48db20, 59}, // 10^37
	{0x96769950b50d88f4, 63}, // 10^38
	{0xbc143fa4e250eb31, 66}, // 10^39
	{0xeb194f8e1ae525fd, 69}, // 10^40
	{0x92efd1b8d0cf37be, 73}, // 10^41
	{0xb7abc627050305ae, 76}, // 10^42
	{0xe596b7b0c643c719, 79}, // 10^43
	{0x8f7e32ce7bea5c70, 83}, // 10^44
	{0xb35dbf821ae4f38c, 86}, // 10^45
	{0xe0352f62a19e306f, 89}, // 10^46
	{0x8c213d9da502de45, 93}, // 10^47
	{0xaf298d050e4395d7, 96}, // 10^48
	{0xdaf3f04651d47b4c, 99}, // 10^49
	{0x88d8762bf324cd10, 103}, // 10^50
	{0xab0e93b6efee0054, 106}, // 10^51
	{0xd5d238a4abe98068, 109}, // 10^52
	{0x85a36366eb71f041, 113}, // 10^53
	{0xa70c3c40a64e6c52, 116}, // 10^54
	{0xd0cf4b50cfe20766, 119}, // 10^55
	{0x82818f1281ed44a0, 123}, // 10^56
	{0xa321f2d7226895c8, 126}, // 10^57
	{0xcbea6f8ceb02bb3a, 129}, // 10^58
	{0xfee50b7025c36a08, 132}, // 10^59
	{0x9f4f2726179a2245, 136}, // 10^60
	{0xc722f0ef9d80aad6, 139}, // 10^61
	{0xf8ebad2b84e0d58c, 142}, // 10^62
	{0x9b934c3b330c8577, 146}, // 10^63
	{0xc2781f49ffcfa6d5, 149}, // 10^64
	{0xf316271c7fc3908b, 152}, // 10^65
	{0x97edd871cfda3a57, 156}, // 10^66
	{0xbde94e8e43d0c8ec, 159}, // 10^67
	{0xed63a231d4c4fb27, 162}, // 10^68
	{0x945e455f24fb1cf9, 166}, // 10^69
	{0xb975d6b6ee39e437, 169}, // 10^70
	{0xe7d34c64a9c85d44, 172}, // 10^71
	{0x90e40fbeea1d3a4b, 176}, // 10^72
	{0xb51d13aea4a488dd, 179}, // 10^73
	{0xe264589a4dcdab15, 182}, // 10^74
	{0x8d7eb76070a08aed, 186}, // 10^75
	{0xb0de65388cc8ada8, 189}, // 10^76
	{0xdd15fe86affad912, 192}, // 10^77
	{0x8a2dbf142dfcc7ab, 196}, // 10^78
	{0xacb92ed9397bf996, 199}, // 10^79
	{0xd7e77a8f87daf7fc, 202}, // 10^80
	{0x86f0ac99b4e8dafd, 206}, // 10^81
	{0xa8acd7c0222311bd, 209}, // 10^82
	{0xd2d80db02aabd62c, 212}, // 10^83
	{0x83c7088e1aab65db, 216}, // 10^84
	{0xa4b8cab1a1563f52, 219}, // 10^85
	{0xcde6fd5e09abcf27, 222}, // 10^86
	{0x80b05e5ac60b6178, 226}, // 10^87
	{0xa0dc75f1778e39d6, 229}, // 10^88
	{0xc913936dd571c84c, 232}, // 10^89
	{0xfb5878494ace3a5f, 235}, // 10^90
	{0x9d174b2dcec0e47b, 239}, // 10^91
	{0xc45d1df942711d9a, 242}, // 10^92
	{0xf5746577930d6501, 245}, // 10^93
	{0x9968bf6abbe85f20, 249}, // 10^94
	{0xbfc2ef456ae276e9, 252}, // 10^95
	{0xefb3ab16c59b14a3, 255}, // 10^96
	{0x95d04aee3b80ece6, 259}, // 10^97
	{0xbb445da9ca61281f, 262}, // 10^98
	{0xea1575143cf97227, 265}, // 10^99
	{0x924d692ca61be758, 269}, // 10^100
	{0xb6e0c377cfa2e12e, 272}, // 10^101
	{0xe498f455c38b997a, 275}, // 10^102
	{0x8edf98b59a373fec, 279}, // 10^103
	{0xb2977ee300c50fe7, 282}, // 10^104
	{0xdf3d5e9bc0f653e1, 285}, // 10^105
	{0x8b865b215899f46d, 289}, // 10^106
	{0xae67f1e9aec07188, 292}, // 10^107
	{0xda01ee641a708dea, 295}, // 10^108
	{0x884134fe908658b2, 299}, // 10^109
	{0xaa51823e34a7eedf, 302}, // 10^110
	{0xd4e5e2cdc1d1ea96, 305}, // 10^111
	{0x850fadc09923329e, 309}, // 10^112
	{0xa6539930bf6bff46, 312}, // 10^113
	{0xcfe87f7cef46ff17, 315}, // 10^114
	{0x81f14fae158c5f6e, 319}, // 10^115
	{0xa26da3999aef774a, 322}, // 10^116
	{0xcb090c8001ab551c, 325}, // 10^117
	{0xfdcb4fa002162a63, 328}, // 10^118
	{0x9e9f11c4014dda7e, 332}, // 10^119
	{0xc646d63501a1511e, 335}, // 10^120
	{0xf7d88bc24209a565, 338}, // 10^121
	{0x9ae757596946075f, 342}, // 10^122
	{0xc1a12d2fc3978937, 345}, // 10^123
	{0xf209787bb47d6b85, 348}, // 10^124
	{0x9745eb4d50ce6333, 352}, // 10^125
	{0xbd176620a501fc00, 355}, // 10^126
	{0xec5d3fa8ce427b00, 358}, // 10^127
	{0x93ba47c980e98ce0, 362}, // 10^128
	{0xb8a8d9bbe123f018, 365}, // 10^129
	{0xe6d3102ad96cec1e, 368}, // 10^130
	{0x9043ea1ac7e41393, 372}, // 10^131
	{0xb454e4a179dd1877, 375}, // 10^132
	{0xe16a1dc9d8545e95, 378}, // 10^133
	{0x8ce2529e2734bb1d, 382}, // 10^134
	{0xb01ae745b101e9e4, 385}, // 10^135
	{0xdc21a1171d42645d, 388}, // 10^136
	{0x899504ae72497eba, 392}, // 10^137
	{0xabfa45da0edbde69, 395}, // 10^138
	{0xd6f8d7509292d603, 398}, // 10^139
	{0x865b86925b9bc5c2, 402}, // 10^140
	{0xa7f26836f282b733, 405}, // 10^141
	{0xd1ef0244af2364ff, 408}, // 10^142
	{0x8335616aed761f1f, 412}, // 10^143
	{0xa402b9c5a8d3a6e7, 415}, // 10^144
	{0xcd036837130890a1, 418}, // 10^145
	{0x802221226be55a65, 422}, // 10^146
	{0xa02aa96b06deb0fe, 425}, // 10^147
	{0xc83553c5c8965d3d, 428}, // 10^148
	{0xfa42a8b73abbf48d, 431}, // 10^149
	{0x9c69a97284b578d8, 435}, // 10^150
	{0xc38413cf25e2d70e, 438}, // 10^151
	{0xf46518c2ef5b8cd1, 441}, // 10^152
	{0x98bf2f79d5993803, 445}, // 10^153
	{0xbeeefb584aff8604, 448}, // 10^154
	{0xeeaaba2e5dbf6785, 451}, // 10^155
	{0x952ab45cfa97a0b3, 455}, // 10^156
	{0xba756174393d88e0, 458}, // 10^157
	{0xe912b9d1478ceb17, 461}, // 10^158
	{0x91abb422ccb812ef, 465}, // 10^159
	{0xb616a12b7fe617aa, 468}, // 10^160
	{0xe39c49765fdf9d95, 471}, // 10^161
	{0x8e41ade9fbebc27d, 475}, // 10^162
	{0xb1d219647ae6b31c, 478}, // 10^163
	{0xde469fbd99a05fe3, 481}, // 10^164
	{0x8aec23d680043bee, 485}, // 10^165
	{0xada72ccc20054aea, 488}, // 10^166
	{0xd910f7ff28069da4, 491}, // 10^167
	{0x87aa9aff79042287, 495}, // 10^168
	{0xa99541bf57452b28, 498}, // 10^169
	{0xd3fa922f2d1675f2, 501}, // 10^170
	{0x847c9b5d7c2e09b7, 505}, // 10^171
	{0xa59bc234db398c25, 508}, // 10^172
	{0xcf02b2c21207ef2f, 511}, // 10^173
	{0x8161afb94b44f57d, 515}, // 10^174
	{0xa1ba1ba79e1632dc, 518}, // 10^175
	{0xca28a291859bbf93, 521}, // 10^176
	{0xfcb2cb35e702af78, 524}, // 10^177
	{0x9defbf01b061adab, 528}, // 10^178
	{0xc56baec21c7a1916, 531}, // 10^179
	{0xf6c69a72a3989f5c, 534}, // 10^180
	{0x9a3c2087a63f6399, 538}, // 10^181
	{0xc0cb28a98fcf3c80, 541}, // 10^182
	{0xf0fdf2d3f3c30b9f, 544}, // 10^183
	{0x969eb7c47859e744, 548}, // 10^184
	{0xbc4665b596706115, 551}, // 10^185
	{0xeb57ff22fc0c795a, 554}, // 10^186
	{0x9316ff75dd87cbd8, 558}, // 10^187
	{0xb7dcbf5354e9bece, 561}, // 10^188
	{0xe5d3ef282a242e82, 564}, // 10^189
	{0x8fa475791a569d11, 568}, // 10^190
	{0xb38d92d760ec4455, 571}, // 10^191
	{0xe070f78d3927556b, 574}, // 10^192
	{0x8c469ab843b89563, 578}, // 10^193
	{0xaf58416654a6babb, 581}, // 10^194
	{0xdb2e51bfe9d0696a, 584}, // 10^195
	{0x88fcf317f22241e2, 588}, // 10^196
	{0xab3c2fddeeaad25b, 591}, // 10^197
	{0xd60b3bd56a5586f2, 594}, // 10^198
	{0x85c7056562757457, 598}, // 10^199
	{0xa738c6bebb12d16d, 601}, // 10^200
	{0xd106f86e69d785c8, 604}, // 10^201
	{0x82a45b450226b39d, 608}, // 10^202
	{0xa34d721642b06084, 611}, // 10^203
	{0xcc20ce9bd35c78a5, 614}, // 10^204
	{0xff290242c83396ce, 617}, // 10^205
	{0x9f79a169bd203e41, 621}, // 10^206
	{0xc75809c42c684dd1, 624}, // 10^207
	{0xf92e0c3537826146, 627}, // 10^208
	{0x9bbcc7a142b17ccc, 631}, // 10^209
	{0xc2abf989935ddbfe, 634}, // 10^210
	{0xf356f7ebf83552fe, 637}, // 10^211
	{0x98165af37b2153df, 641}, // 10^212
	{0xbe1bf1b059e9a8d6, 644}, // 10^213
	{0xeda2ee1c7064130c, 647}, // 10^214
	{0x9485d4d1c63e8be8, 651}, // 10^215
	{0xb9a74a0637ce2ee1, 654}, // 10^216
	{0xe8111c87c5c1ba9a, 657}, // 10^217
	{0x910ab1d4db9914a0, 661}, // 10^218
	{0xb54d5e4a127f59c8, 664}, // 10^219
	{0xe2a0b5dc971f303a, 667}, // 10^220
	{0x8da471a9de737e24, 671}, // 10^221
	{0xb10d8e1456105dad, 674}, // 10^222
	{0xdd50f1996b947519, 677}, // 10^223
	{0x8a5296ffe33cc930, 681}, // 10^224
	{0xace73cbfdc0bfb7b, 684}, // 10^225
	{0xd8210befd30efa5a, 687}, // 10^226
	{0x8714a775e3e95c78, 691}, // 10^227
	{0xa8d9d1535ce3b396, 694}, // 10^228
	{0xd31045a8341ca07c, 697}, // 10^229
	{0x83ea2b892091e44e, 701}, // 10^230
	{0xa4e4b66b68b65d61, 704}, // 10^231
	{0xce1de40642e3f4b9, 707}, // 10^232
	{0x80d2ae83e9ce78f4, 711}, // 10^233
	{0xa1075a24e4421731, 714}, // 10^234
	{0xc94930ae1d529cfd, 717}, // 10^235
	{0xfb9b7cd9a4a7443c, 720}, // 10^236
	{0x9d412e0806e88aa6, 724}, // 10^237
	{0xc491798a08a2ad4f, 727}, // 10^238
	{0xf5b5d7ec8acb58a3, 730}, // 10^239
	{0x9991a6f3d6bf1766, 734}, // 10^240
	{0xbff610b0cc6edd3f, 737}, // 10^241
	{0xeff394dcff8a948f, 740}, // 10^242
	{0x95f83d0a1fb69cd9, 744}, // 10^243
	{0xbb764c4ca7a44410, 747}, // 10^244
	{0xea53df5fd18d5514, 750}, // 10^245
	{0x92746b9be2f8552c, 754}, // 10^246
	{0xb7118682dbb66a77, 757}, // 10^247
	{0xe4d5e82392a40515, 760}, // 10^248
	{0x8f05b1163ba6832d, 764}, // 10^249
	{0xb2c71d5bca9023f8, 767}, // 10^250
	{0xdf78e4b2bd342cf7, 770}, // 10^251
	{0x8bab8eefb6409c1a, 774}, // 10^252
	{0xae9672aba3d0c321, 777}, // 10^253
	{0xda3c0f568cc4f3e9, 780}, // 10^254
	{0x8865899617fb1871, 784}, // 10^255
	{0xaa7eebfb9df9de8e, 787}, // 10^256
	{0xd51ea6fa85785631, 790}, // 10^257
	{0x8533285c936b35df, 794}, // 10^258
	{0xa67ff273b8460357, 797}, // 10^259
	{0xd01fef10a657842c, 800}, // 10^260
	{0x8213f56a67f6b29c, 804}, // 10^261
	{0xa298f2c501f45f43, 807}, // 10^262
	{0xcb3f2f7642717713, 810}, // 10^263
	{0xfe0efb53d30dd4d8, 813}, // 10^264
	{0x9ec95d1463e8a507, 817}, // 10^265
	{0xc67bb4597ce2ce49, 820}, // 10^266
	{0xf81aa16fdc1b81db, 823}, // 10^267
	{0x9b10a4e5e9913129, 827}, // 10^268
	{0xc1d4ce1f63f57d73, 830}, // 10^269
	{0xf24a01a73cf2dcd0, 833}, // 10^270
	{0x976e41088617ca02, 837}, // 10^271
	{0xbd49d14aa79dbc82, 840}, // 10^272
	{0xec9c459d51852ba3, 843}, // 10^273
	{0x93e1ab8252f33b46, 847}, // 10^274
	{0xb8da1662e7b00a17, 850}, // 10^275
	{0xe7109bfba19c0c9d, 853}, // 10^276
	{0x906a617d450187e2, 857}, // 10^277
	{0xb484f9dc9641e9db, 860}, // 10^278
	{0xe1a63853bbd26451, 863}, // 10^279
	{0x8d07e33455637eb3, 867}, // 10^280
	{0xb049dc016abc5e60, 870}, // 10^281
	{0xdc5c5301c56b75f7, 873}, // 10^282
	{0x89b9b3e11b6329bb, 877}, // 10^283
	{0xac2820d9623bf429, 880}, // 10^284
	{0xd732290fbacaf134, 883}, // 10^285
	{0x867f59a9d4bed6c0, 887}, // 10^286
	{0xa81f301449ee8c70, 890}, // 10^287
	{0xd226fc195c6a2f8c, 893}, // 10^288
	{0x83585d8fd9c25db8, 897}, // 10^289
	{0xa42e74f3d032f526, 900}, // 10^290
	{0xcd3a1230c43fb26f, 903}, // 10^291
	{0x80444b5e7aa7cf85, 907}, // 10^292
	{0xa0555e361951c367, 910}, // 10^293
	{0xc86ab5c39fa63441, 913}, // 10^294
	{0xfa856334878fc151, 916}, // 10^295
	{0x9c935e00d4b9d8d2, 920}, // 10^296
	{0xc3b8358109e84f07, 923}, // 10^297
	{0xf4a642e14c6262c9, 926}, // 10^298
	{0x98e7e9cccfbd7dbe, 930}, // 10^299
	{0xbf21e44003acdd2d, 933}, // 10^300
	{0xeeea5d5004981478, 936}, // 10^301
	{0x95527a5202df0ccb, 940}, // 10^302
	{0xbaa718e68396cffe, 943}, // 10^303
	{0xe950df20247c83fd, 946}, // 10^304
	{0x91d28b7416cdd27e, 950}, // 10^305
	{0xb6472e511c81471e, 953}, // 10^306
	{0xe3d8f9e563a198e5, 956}, // 10^307
	{0x8e679c2f5e44ff8f, 960}, // 10^308
	{0xb201833b35d63f73, 963}, // 10^309
	{0xde81e40a034bcf50, 966}, // 10^310
	{0x8b112e86420f6192, 970}, // 10^311
	{0xadd57a27d29339f6, 973}, // 10^312
	{0xd94ad8b1c7380874, 976}, // 10^313
	{0x87cec76f1c830549, 980}, // 10^314
	{0xa9c2794ae3a3c69b, 983}, // 10^315
	{0xd433179d9c8cb841, 986}, // 10^316
	{0x849feec281d7f329, 990}, // 10^317
	{0xa5c7ea73224deff3, 993}, // 10^318
	{0xcf39e50feae16bf0, 996}, // 10^319
	{0x81842f29f2cce376, 1000}, // 10^320
	{0xa1e53af46f801c53, 1003}, // 10^321
	{0xca5e89b18b602368, 1006}, // 10^322
	{0xfcf62c1dee382c42, 1009}, // 10^323
	{0x9e19db92b4e31ba9, 1013}, // 10^324
	{0xc5a05277621be294, 1016}, // 10^325
	{0xf70867153aa2db39, 1019}, // 10^326
	{0x9a65406d44a5c903, 1023}, // 10^327
	{0xc0fe908895cf3b44, 1026}, // 10^328
	{0xf13e34aabb430a15, 1029}, // 10^329
	{0x96c6e0eab509e64d, 1033}, // 10^330
	{0xbc789925624c5fe1, 1036}, // 10^331
	{0xeb96bf6ebadf77d9, 1039}, // 10^332
	{0x933e37a534cbaae8, 1043}, // 10^333
	{0xb80dc58e81fe95a1, 1046}, // 10^334
	{0xe61136f2227e3b0a, 1049}, // 10^335
	{0x8fcac257558ee4e6, 1053}, // 10^336
	{0xb3bd72ed2af29e20, 1056}, // 10^337
	{0xe0accfa875af45a8, 1059}, // 10^338
	{0x8c6c01c9498d8b89, 1063}, // 10^339
	{0xaf87023b9bf0ee6b, 1066}, // 10^340
	{0xdb68c2ca82ed2a06, 1069}, // 10^341
	{0x892179be91d43a44, 1073}, // 10^342
	{0xab69d82e364948d4, 1076}, // 10^343
	{0xd6444e39c3db9b0a, 1079}, // 10^344
	{0x85eab0e41a6940e6, 1083}, // 10^345
	{0xa7655d1d2103911f, 1086}, // 10^346
	{0xd13eb46469447567, 1089}, // 10^347
	{0x82c730bec1cac961, 1093}, // 10^348
	{0xa378fcee723d7bb9, 1096}, // 10^349
	{0xcc573c2a0eccdaa7, 1099}, // 10^350
	{0xff6d0b3492801151, 1102}, // 10^351
	{0x9fa42700db900ad2, 1106}, // 10^352
	{0xc78d30c112740d87, 1109}, // 10^353
	{0xf9707cf1571110e9, 1112}, // 10^354
	{0x9be64e16d66aaa91, 1116}, // 10^355
	{0xc2dfe19c8c055536, 1119}, // 10^356
	{0xf397da03af06aa83, 1122}, // 10^357
	{0x983ee8424d642a92, 1126}, // 10^358
	{0xbe4ea252e0bd3537, 1129}, // 10^359
	{0xede24ae798ec8284, 1132}, // 10^360
	{0x94ad6ed0bf93d193, 1136}, // 10^361
	{0xb9d8ca84ef78c5f7, 1139}, // 10^362
	{0xe84efd262b56f775, 1142}, // 10^363
	{0x91315e37db165aa9, 1146}, // 10^364
	{0xb57db5c5d1dbf153, 1149}, // 10^365
	{0xe2dd23374652eda8, 1152}, // 10^366
	{0x8dca36028bf3d489, 1156}, // 10^367
	{0xb13cc3832ef0c9ac, 1159}, // 10^368
	{0xdd8bf463faacfc16, 1162}, // 10^369
	{0x8a7778be7cac1d8e, 1166}, // 10^370
	{0xad1556ee1bd724f1, 1169}, // 10^371
	{0xd85aaca9a2ccee2e, 1172}, // 10^372
	{0x8738abea05c014dd, 1176}, // 10^373
	{0xa906d6e487301a14, 1179}, // 10^374
	{0xd3488c9da8fc2099, 1182}, // 10^375
	{0x840d57e2899d945f, 1186}, // 10^376
	{0xa510addb2c04f977, 1189}, // 10^377
	{0xce54d951f70637d5, 1192}, // 10^378
	{0x80f507d33a63e2e5, 1196}, // 10^379
	{0xa13249c808fcdb9f, 1199}, // 10^380
}

// pow10WideLookup returns the table entry for 10^exp, and whether exp
// is in range.
func pow10WideLookup(exp int32) (pow10Entry, bool) {
	if exp < pow10WideMinExp || exp > pow10WideMaxExp {
		return pow10Entry{}, false
	}
	return pow10Wide[exp-pow10WideMinExp], true
}
